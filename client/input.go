package client

import (
	"regexp"
	"strings"
)

const videoIDLength = 11

var (
	videoIDPattern  = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)
	watchURLPattern = regexp.MustCompile(`(?:youtu\.be/|/v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*)`)
)

// ExtractVideoID accepts either a raw id or common watch URL shapes and
// returns the canonical 11-character identifier. A match whose captured
// token has the wrong length is treated as no identifier at all.
func ExtractVideoID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrInvalidInput
	}
	if videoIDPattern.MatchString(s) {
		return s, nil
	}
	m := watchURLPattern.FindStringSubmatch(s)
	if len(m) != 2 || len(m[1]) != videoIDLength {
		return "", ErrIdentifierNotFound
	}
	return m[1], nil
}
