// Package httputil provides a hardened HTTP client and filename sanitization.
package httputil

import (
	"crypto/tls"
	"net/http"
	"time"
)

// NewClient creates a hardened HTTP client with secure defaults. The zero
// timeout leaves deadlines to the caller's context; media transfers can
// legitimately outlive any fixed client timeout.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			ForceAttemptHTTP2:   true,
			MaxIdleConns:        10,
			IdleConnTimeout:     30 * time.Second,
			DisableCompression:  false,
			MaxIdleConnsPerHost: 5,
		},
	}
}
