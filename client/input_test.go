package client

import (
	"errors"
	"testing"
)

func TestExtractVideoIDRecognizedShapes(t *testing.T) {
	const id = "dQw4w9WgXcQ"
	shapes := map[string]string{
		"short link":  "https://youtu.be/" + id,
		"v path":      "https://www.youtube.com/v/" + id,
		"user path":   "https://www.youtube.com/u/c/" + id,
		"embed":       "https://www.youtube.com/embed/" + id,
		"watch":       "https://www.youtube.com/watch?v=" + id,
		"query v":     "https://www.youtube.com/watch?feature=share&v=" + id,
		"bare id":     id,
		"with anchor": "https://www.youtube.com/watch?v=" + id + "#t=30",
	}
	for name, url := range shapes {
		t.Run(name, func(t *testing.T) {
			got, err := ExtractVideoID(url)
			if err != nil {
				t.Fatalf("ExtractVideoID(%q): %v", url, err)
			}
			if got != id {
				t.Errorf("id = %q, want %q", got, id)
			}
		})
	}
}

func TestExtractVideoIDWrongLengthIsNotFound(t *testing.T) {
	cases := []string{
		"https://www.youtube.com/watch?v=short",
		"https://youtu.be/waytoolongtoken99",
		"https://www.youtube.com/embed/",
	}
	for _, url := range cases {
		if _, err := ExtractVideoID(url); !errors.Is(err, ErrIdentifierNotFound) {
			t.Errorf("ExtractVideoID(%q) err = %v, want ErrIdentifierNotFound", url, err)
		}
	}
}

func TestExtractVideoIDUnrecognizedURL(t *testing.T) {
	if _, err := ExtractVideoID("https://example.com/video/123"); !errors.Is(err, ErrIdentifierNotFound) {
		t.Fatalf("err = %v, want ErrIdentifierNotFound", err)
	}
}

func TestExtractVideoIDEmptyIsInvalidInput(t *testing.T) {
	for _, input := range []string{"", "   "} {
		if _, err := ExtractVideoID(input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ExtractVideoID(%q) err = %v, want ErrInvalidInput", input, err)
		}
	}
}
