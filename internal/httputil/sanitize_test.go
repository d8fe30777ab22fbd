package httputil

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "video_dQw4w9WgXcQ.mp4", "video_dQw4w9WgXcQ.mp4"},
		{"directory components stripped", "/etc/passwd", "passwd"},
		{"traversal replaced", "..secret", "_secret"},
		{"windows reserved chars", `a:b*c?d"e<f>g|h`, "a_b_c_d_e_f_g_h"},
		{"null byte removed", "a\x00b", "ab"},
		{"empty becomes untitled", "", "untitled"},
		{"dot becomes untitled", ".", "untitled"},
		{"unicode preserved", "видео.mp4", "видео.mp4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFilename(tt.input)
			if got != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewClientHasTimeout(t *testing.T) {
	c := NewClient(0)
	if c.Timeout != 0 {
		t.Errorf("timeout = %v, want caller-controlled zero", c.Timeout)
	}
	if c.Transport == nil {
		t.Fatal("transport not configured")
	}
}
