package cookies

import (
	"strings"
	"testing"
)

func TestParseNetscape(t *testing.T) {
	input := strings.Join([]string{
		"# Netscape HTTP Cookie File",
		"# This is a generated file.",
		"",
		".youtube.com\tTRUE\t/\tTRUE\t1924992000\tSID\tabc123",
		".youtube.com\tTRUE\t/\tTRUE\t1924992000\tHSID\tdef456",
		"malformed line without tabs",
		".youtube.com\tTRUE\t/\tFALSE\t0\tPREF\tf6=40000000",
	}, "\n")

	creds, err := ParseNetscape(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseNetscape: %v", err)
	}
	want := "SID=abc123; HSID=def456; PREF=f6=40000000"
	if string(creds) != want {
		t.Errorf("creds = %q, want %q", creds, want)
	}
	if !creds.Present() {
		t.Error("parsed credentials should be present")
	}
}

func TestParseNetscapeEmptyFile(t *testing.T) {
	creds, err := ParseNetscape(strings.NewReader("# header only\n"))
	if err != nil {
		t.Fatalf("ParseNetscape: %v", err)
	}
	if creds.Present() {
		t.Errorf("creds = %q, want empty", creds)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/cookies.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
