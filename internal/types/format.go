package types

// FormatInfo is the normalized model for one downloadable encoding.
type FormatInfo struct {
	Itag          int
	URL           string
	MimeType      string
	Container     string // "mp4", "webm", ...
	HasAudio      bool
	HasVideo      bool
	Bitrate       int
	Width         int
	Height        int
	FPS           int
	Ciphered      bool
	Quality       string
	QualityLabel  string
	ContentLength int64

	// SignatureCipher holds the raw cipher query for formats without a
	// direct URL. Resolved to a playable URL at download time.
	SignatureCipher string
}

// Progressive reports whether the format is a single contiguous file
// carrying both tracks. Clip extraction operates on these only.
func (f FormatInfo) Progressive() bool {
	return f.HasAudio && f.HasVideo
}
