package client

import "testing"

func TestBuildFilename(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		videoID   string
		container string
		want      string
	}{
		{"title used", "My Video", "dQw4w9WgXcQ", "mp4", "My Video.mp4"},
		{"empty title falls back to id", "", "dQw4w9WgXcQ", "mp4", "video_dQw4w9WgXcQ.mp4"},
		{"traversal stripped", "../../etc/passwd", "dQw4w9WgXcQ", "mp4", "passwd.mp4"},
		{"container respected", "t", "dQw4w9WgXcQ", "webm", "t.webm"},
		{"empty container defaults", "t", "dQw4w9WgXcQ", "", "t.mp4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildFilename(tt.title, tt.videoID, tt.container)
			if got != tt.want {
				t.Errorf("buildFilename = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMimeTypeOf(t *testing.T) {
	if got := mimeTypeOf("webm"); got != "video/webm" {
		t.Errorf("webm mime = %q", got)
	}
	if got := mimeTypeOf("mp4"); got != "video/mp4" {
		t.Errorf("mp4 mime = %q", got)
	}
	if got := mimeTypeOf("3gp"); got != "video/3gpp" {
		t.Errorf("3gp mime = %q", got)
	}
}
