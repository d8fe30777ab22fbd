package client

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/famomatic/clipper/internal/httputil"
)

// defaultHTTPClient builds the hardened outbound client, routing through
// proxyURL when one is configured. A malformed proxy URL is ignored.
func defaultHTTPClient(proxyURL string) *http.Client {
	c := httputil.NewClient(0)
	if strings.TrimSpace(proxyURL) == "" {
		return c
	}
	parsed, err := url.Parse(proxyURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return c
	}
	if transport, ok := c.Transport.(*http.Transport); ok {
		transport.Proxy = http.ProxyURL(parsed)
	}
	return c
}
