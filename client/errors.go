package client

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a missing URL or malformed time range.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIdentifierNotFound indicates the URL matches no recognized shape.
	ErrIdentifierNotFound = errors.New("no video identifier found")
	// ErrMetadataUnavailable indicates the remote metadata fetch failed.
	// Not-found and network failures are deliberately not distinguished.
	ErrMetadataUnavailable = errors.New("metadata unavailable")
	// ErrNoFormatAvailable indicates the video has no downloadable format.
	ErrNoFormatAvailable = errors.New("no format available")
	// ErrDownloadFailed indicates a stream error or premature termination.
	ErrDownloadFailed = errors.New("download failed")
	// ErrExtractionFailed indicates the trim executor failed or the source
	// buffer was malformed.
	ErrExtractionFailed = errors.New("extraction failed")
)

// wrapKind attaches one of the package error kinds to an internal failure.
// The cause is formatted with %v so callers can only match on the kind.
func wrapKind(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return fmt.Errorf("%w: %v", kind, cause)
}
