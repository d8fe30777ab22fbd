package types

import "errors"

var (
	// ErrMetadataUnavailable indicates the remote metadata source could not
	// be reached or parsed. Not-found and network failures are not
	// distinguished.
	ErrMetadataUnavailable = errors.New("metadata unavailable")

	// ErrNoFormats indicates the provider returned no downloadable formats.
	ErrNoFormats = errors.New("no formats available")

	// ErrTruncatedTransfer indicates the stream ended before the announced
	// content length was reached.
	ErrTruncatedTransfer = errors.New("transfer truncated")

	// ErrChallengeNotSolved indicates stream URL deciphering is still required.
	ErrChallengeNotSolved = errors.New("challenge not solved")
)
