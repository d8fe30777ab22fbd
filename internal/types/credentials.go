package types

// Credentials is opaque session material supplied by the caller and
// forwarded verbatim as a Cookie header on metadata and stream requests.
// The pipeline never parses, mutates, persists, or logs it.
type Credentials string

// Present reports whether any credential material was supplied.
func (c Credentials) Present() bool { return c != "" }
