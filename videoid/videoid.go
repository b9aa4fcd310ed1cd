// Package videoid extracts the canonical video identifier from a
// user-supplied YouTube URL. Pure string matching, no I/O.
package videoid

import (
	"regexp"

	"github.com/ytbrief/ytbrief/errors"
)

// Matches the known URL shapes: standard watch URLs with a v parameter,
// youtu.be share links, and /embed/, /v/, /e/ player URLs. The capture
// group is the 11-character video token.
var idPattern = regexp.MustCompile(`(?i)(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Extract returns the 11-character video ID for url. The first
// recognized shape wins; an unrecognized URL fails with an invalid-URL
// error and must never reach the network-facing stages.
func Extract(url string) (string, error) {
	const op = "videoid.Extract"

	if url == "" {
		return "", errors.InvalidURL(op, nil, "Video URL is required")
	}

	m := idPattern.FindStringSubmatch(url)
	if m == nil {
		return "", errors.InvalidURL(op, nil, "Invalid YouTube URL")
	}

	return m[1], nil
}

// ValidToken reports whether id looks like a bare video ID.
func ValidToken(id string) bool {
	return tokenPattern.MatchString(id)
}
