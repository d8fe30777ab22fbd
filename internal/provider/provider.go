// Package provider adapts the remote video platform into the narrow
// metadata/stream contract the pipeline consumes.
package provider

import (
	"context"

	"github.com/famomatic/clipper/internal/types"
)

// Provider supplies video metadata and stream URL resolution.
type Provider interface {
	// GetBasicMetadata returns duration, title and description without
	// enumerating download formats.
	GetBasicMetadata(ctx context.Context, videoID string, creds types.Credentials) (*types.Metadata, error)

	// GetMetadata returns full metadata including available formats.
	GetMetadata(ctx context.Context, videoID string, creds types.Credentials) (*types.Metadata, error)

	// ResolveStreamURL turns a format descriptor into a directly
	// downloadable URL, deciphering when the format requires it.
	ResolveStreamURL(ctx context.Context, videoID string, format types.FormatInfo, creds types.Credentials) (string, error)
}
