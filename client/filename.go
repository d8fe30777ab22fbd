package client

import (
	"strings"

	"github.com/famomatic/clipper/internal/httputil"
)

// buildFilename derives a download filename from the video title, falling
// back to the identifier. The extension always follows the source container.
func buildFilename(title, videoID, container string) string {
	if container == "" {
		container = "mp4"
	}
	base := httputil.SanitizeFilename(strings.TrimSpace(title))
	if base == "" || base == "untitled" {
		base = "video_" + videoID
	}
	return base + "." + container
}

func mimeTypeOf(container string) string {
	switch container {
	case "webm":
		return "video/webm"
	case "3gp":
		return "video/3gpp"
	default:
		return "video/mp4"
	}
}
