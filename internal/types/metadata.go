package types

// Metadata contains descriptive video metadata for one request.
type Metadata struct {
	ID          string
	Title       string
	Description string
	Duration    int64 // Seconds, truncated
	Formats     []FormatInfo
}
