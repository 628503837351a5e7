// Package validation checks pasted video links against the address shapes the
// app accepts.
package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyInput = errors.New("URL is required")
	ErrInvalidURL = errors.New("not a valid Facebook video URL")
)

var (
	videoPageRegex  = regexp.MustCompile(`^https?://(www\.)?facebook\.com/.*/videos/\d+`)
	shortLinkRegex  = regexp.MustCompile(`^https?://(www\.)?fb\.watch/[a-zA-Z0-9]+`)
	watchQueryRegex = regexp.MustCompile(`^https?://(www\.)?facebook\.com/watch/\?v=\d+`)
)

// Shape names a family of accepted links
type Shape string

const (
	ShapeNone      Shape = ""
	ShapeVideoPage Shape = "video_page"
	ShapeShortLink Shape = "short_link"
	ShapeWatch     Shape = "watch"
)

var shapes = []struct {
	shape   Shape
	pattern *regexp.Regexp
}{
	{ShapeVideoPage, videoPageRegex},
	{ShapeShortLink, shortLinkRegex},
	{ShapeWatch, watchQueryRegex},
}

// IsValidURL reports whether candidate matches any accepted link shape
func IsValidURL(candidate string) bool {
	return Detect(candidate) != ShapeNone
}

// Detect returns the first shape candidate matches, in declaration order
func Detect(candidate string) Shape {
	for _, s := range shapes {
		if s.pattern.MatchString(candidate) {
			return s.shape
		}
	}
	return ShapeNone
}

// Validate trims raw input and returns it if it is an accepted link.
func Validate(raw string) (string, error) {
	url := strings.TrimSpace(raw)
	if url == "" {
		return "", ErrEmptyInput
	}
	if !IsValidURL(url) {
		return "", ErrInvalidURL
	}
	return url, nil
}
