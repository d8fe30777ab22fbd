package client

import (
	"net/http"
	"time"
)

// Config controls client construction. The zero value is usable; every
// field has a working default.
type Config struct {
	// HTTPClient is used for metadata and media transfers. Defaults to a
	// hardened client without a fixed timeout; deadlines come from
	// RequestTimeout or the caller's context.
	HTTPClient *http.Client

	// RequestTimeout bounds a whole Preview or Clip call when the caller's
	// context has no deadline of its own. Zero means no default deadline.
	RequestTimeout time.Duration

	// MaxDownloadBytes caps the in-memory source buffer. Zero selects the
	// downloader default of 2 GiB.
	MaxDownloadBytes int64

	// FFmpegPath locates the trim executor. Empty means "ffmpeg" in PATH.
	FFmpegPath string

	// ProxyURL routes all outbound requests through an HTTP proxy. Ignored
	// when HTTPClient is supplied.
	ProxyURL string

	// Logger receives non-fatal warnings. Nil disables them.
	Logger Logger
}
