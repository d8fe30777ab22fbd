package playerjs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// Resolver locates and fetches the player JS for a video.
type Resolver interface {
	GetPlayerJS(ctx context.Context, playerURL string) (string, error)
	GetPlayerURL(ctx context.Context, videoID string) (string, error)
}

type defaultResolver struct {
	client *http.Client
	cache  Cache
	config ResolverConfig
}

// ResolverConfig contains externally tunable settings for player JS fetches.
type ResolverConfig struct {
	BaseURL   string
	UserAgent string
	Headers   http.Header
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var playerURLPattern = regexp.MustCompile(`(/s/player/[A-Za-z0-9_-]+/[A-Za-z0-9._/-]*/base\.js)`)

func NewResolver(client *http.Client, cache Cache, cfg ResolverConfig) Resolver {
	return &defaultResolver{client: client, cache: cache, config: cfg}
}

func (r *defaultResolver) baseURL() string {
	if r.config.BaseURL != "" {
		return strings.TrimRight(r.config.BaseURL, "/")
	}
	return "https://www.youtube.com"
}

// GetPlayerURL fetches the watch page and extracts the base.js path.
func (r *defaultResolver) GetPlayerURL(ctx context.Context, videoID string) (string, error) {
	u, err := url.Parse(r.baseURL() + "/watch")
	if err != nil {
		return "", fmt.Errorf("failed to build watch url: %w", err)
	}
	q := u.Query()
	q.Set("v", videoID)
	u.RawQuery = q.Encode()

	body, err := r.fetch(ctx, u.String())
	if err != nil {
		return "", err
	}
	m := playerURLPattern.FindStringSubmatch(body)
	if len(m) < 2 {
		return "", fmt.Errorf("player url not found in watch page")
	}
	return m[1], nil
}

// GetPlayerJS fetches the player JS body, using the cache when possible.
func (r *defaultResolver) GetPlayerJS(ctx context.Context, playerURL string) (string, error) {
	if body, ok := r.cache.Get(playerURL); ok {
		return body, nil
	}

	target := playerURL
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = r.baseURL() + playerURL
	}
	body, err := r.fetch(ctx, target)
	if err != nil {
		return "", err
	}
	r.cache.Set(playerURL, body)
	return body, nil
}

func (r *defaultResolver) fetch(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	ua := r.config.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	for k, values := range r.config.Headers {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad status code: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	return string(body), nil
}
