// Package downloader fetches a resolved stream URL into memory in one pass.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/famomatic/clipper/internal/types"
)

// DefaultMaxBytes caps in-memory transfers at 2 GiB.
const DefaultMaxBytes int64 = 2 << 30

// ErrEmptyTransfer is returned when the origin responds with a zero-byte body.
var ErrEmptyTransfer = errors.New("downloader: empty transfer")

// ErrTooLarge is returned when the transfer would exceed the configured cap.
var ErrTooLarge = errors.New("downloader: transfer exceeds size cap")

// Fetcher performs a single full download of a stream URL. Transfers are
// not retried; a failed or truncated transfer surfaces as an error and no
// partial buffer is ever returned.
type Fetcher struct {
	client    *http.Client
	maxBytes  int64
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxBytes overrides the in-memory size cap.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxBytes = n
		}
	}
}

// WithUserAgent sets the User-Agent sent on transfer requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// NewFetcher returns a Fetcher backed by client.
func NewFetcher(client *http.Client, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:   client,
		maxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads streamURL completely into memory. Cookie credentials, when
// present, are forwarded verbatim on the request and never inspected.
func (f *Fetcher) Fetch(ctx context.Context, streamURL string, creds types.Credentials) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		return nil, err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	if creds.Present() {
		req.Header.Set("Cookie", string(creds))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return nil, fmt.Errorf("downloader: status %d", resp.StatusCode)
	}
	if resp.ContentLength > f.maxBytes {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrTooLarge, resp.ContentLength, f.maxBytes)
	}

	// Read one byte past the cap so an origin that lies about (or omits)
	// Content-Length still trips the limit.
	buf, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %v", types.ErrTruncatedTransfer, err)
		}
		return nil, err
	}
	if int64(len(buf)) > f.maxBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrTooLarge, f.maxBytes)
	}
	if resp.ContentLength >= 0 && int64(len(buf)) < resp.ContentLength {
		return nil, fmt.Errorf("%w: got %d of %d bytes", types.ErrTruncatedTransfer, len(buf), resp.ContentLength)
	}
	if len(buf) == 0 {
		return nil, ErrEmptyTransfer
	}
	return buf, nil
}
