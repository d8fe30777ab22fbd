// Package client is the public entry point for the preview and clip
// extraction pipeline.
package client

import (
	"context"
	"errors"

	"github.com/famomatic/clipper/internal/downloader"
	"github.com/famomatic/clipper/internal/formats"
	"github.com/famomatic/clipper/internal/provider"
	"github.com/famomatic/clipper/internal/trim"
	"github.com/famomatic/clipper/internal/types"
)

// streamFetcher retrieves a resolved stream URL as one full buffer.
type streamFetcher interface {
	Fetch(ctx context.Context, streamURL string, creds types.Credentials) ([]byte, error)
}

// Client runs the preview and clip pipelines. Every call is independent;
// nothing is cached or shared across requests.
type Client struct {
	config   Config
	provider provider.Provider
	fetcher  streamFetcher
	trimmer  trim.Trimmer
	logger   Logger
}

// New creates a new Client.
func New(config Config) *Client {
	if config.HTTPClient == nil {
		config.HTTPClient = defaultHTTPClient(config.ProxyURL)
	}
	logger := config.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	var fetchOpts []downloader.Option
	if config.MaxDownloadBytes > 0 {
		fetchOpts = append(fetchOpts, downloader.WithMaxBytes(config.MaxDownloadBytes))
	}

	return &Client{
		config:   config,
		provider: provider.NewInnertubeProvider(config.HTTPClient),
		fetcher:  downloader.NewFetcher(config.HTTPClient, fetchOpts...),
		trimmer:  trim.NewFFmpegTrimmer(config.FFmpegPath),
		logger:   logger,
	}
}

// PreviewResult carries the metadata shown before a clip range is chosen.
type PreviewResult struct {
	VideoID         string
	DurationSeconds int64
	Title           string
	Description     string
}

// ClipResult is a finished media payload plus naming hints.
type ClipResult struct {
	VideoID   string
	Data      []byte
	Filename  string
	Container string
	MimeType  string
}

// Preview resolves url and returns duration, title and description without
// touching the media payload. Credentials, when present, are forwarded
// verbatim to the metadata provider.
func (c *Client) Preview(ctx context.Context, url string, creds types.Credentials) (*PreviewResult, error) {
	ctx, cancel := withDefaultTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	videoID, err := ExtractVideoID(url)
	if err != nil {
		return nil, err
	}

	meta, err := c.provider.GetBasicMetadata(ctx, videoID, creds)
	if err != nil {
		return nil, wrapKind(ErrMetadataUnavailable, err)
	}

	return &PreviewResult{
		VideoID:         meta.ID,
		DurationSeconds: meta.Duration,
		Title:           meta.Title,
		Description:     meta.Description,
	}, nil
}

// Download fetches the complete source video as one buffer.
func (c *Client) Download(ctx context.Context, url string, creds types.Credentials) (*ClipResult, error) {
	ctx, cancel := withDefaultTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	videoID, err := ExtractVideoID(url)
	if err != nil {
		return nil, err
	}
	meta, err := c.fetchFullMetadata(ctx, videoID, creds)
	if err != nil {
		return nil, err
	}
	return c.downloadSource(ctx, videoID, meta, creds)
}

// Clip fetches the source video and extracts [startSeconds, endSeconds)
// by seek-and-copy. The range is validated before any network call.
func (c *Client) Clip(ctx context.Context, url string, startSeconds, endSeconds float64, creds types.Credentials) (*ClipResult, error) {
	ctx, cancel := withDefaultTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	rng := types.TimeRange{StartSeconds: startSeconds, EndSeconds: endSeconds}
	if err := rng.Validate(); err != nil {
		return nil, wrapKind(ErrInvalidInput, err)
	}
	videoID, err := ExtractVideoID(url)
	if err != nil {
		return nil, err
	}

	// Range-vs-duration check runs on metadata alone so an out-of-range
	// request never pays for the transfer.
	meta, err := c.fetchFullMetadata(ctx, videoID, creds)
	if err != nil {
		return nil, err
	}
	if err := rng.ValidateAgainst(meta.Duration); err != nil {
		return nil, wrapKind(ErrInvalidInput, err)
	}

	source, err := c.downloadSource(ctx, videoID, meta, creds)
	if err != nil {
		return nil, err
	}

	clip, err := c.trimmer.Extract(ctx, source.Data, rng, source.Container)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, wrapKind(ErrExtractionFailed, err)
	}

	return &ClipResult{
		VideoID:   source.VideoID,
		Data:      clip,
		Filename:  source.Filename,
		Container: source.Container,
		MimeType:  source.MimeType,
	}, nil
}

// fetchFullMetadata retrieves metadata including formats, collapsing any
// provider failure into the metadata error kind.
func (c *Client) fetchFullMetadata(ctx context.Context, videoID string, creds types.Credentials) (*types.Metadata, error) {
	meta, err := c.provider.GetMetadata(ctx, videoID, creds)
	if err != nil {
		return nil, wrapKind(ErrMetadataUnavailable, err)
	}
	return meta, nil
}

// downloadSource runs format selection, stream resolution and the full
// transfer for already-fetched metadata.
func (c *Client) downloadSource(ctx context.Context, videoID string, meta *types.Metadata, creds types.Credentials) (*ClipResult, error) {
	format, err := formats.SelectBest(meta.Formats)
	if err != nil {
		return nil, wrapKind(ErrNoFormatAvailable, err)
	}

	streamURL, err := c.provider.ResolveStreamURL(ctx, videoID, format, creds)
	if err != nil {
		return nil, wrapKind(ErrDownloadFailed, err)
	}

	buf, err := c.fetcher.Fetch(ctx, streamURL, creds)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, wrapKind(ErrDownloadFailed, err)
	}

	if meta.Title == "" {
		c.logger.Warnf("video %s has no title, falling back to identifier for filename", videoID)
	}

	return &ClipResult{
		VideoID:   meta.ID,
		Data:      buf,
		Filename:  buildFilename(meta.Title, meta.ID, format.Container),
		Container: format.Container,
		MimeType:  mimeTypeOf(format.Container),
	}, nil
}
