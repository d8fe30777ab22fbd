// Package cookies turns a Netscape cookies.txt file into an opaque Cookie
// header value. The pipeline treats the result as a credential token and
// never inspects it again.
package cookies

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/famomatic/clipper/internal/types"
)

// ParseNetscape reads a Netscape cookies.txt and joins every cookie into a
// single Cookie header string.
// Format: domain flag path secure expiration name value
func ParseNetscape(r io.Reader) (types.Credentials, error) {
	var pairs []string
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 7 {
			continue
		}

		name := parts[5]
		value := parts[6]
		if name == "" {
			continue
		}
		pairs = append(pairs, name+"="+value)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return types.Credentials(strings.Join(pairs, "; ")), nil
}

// LoadFile parses the cookies.txt at path.
func LoadFile(path string) (types.Credentials, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return ParseNetscape(f)
}
