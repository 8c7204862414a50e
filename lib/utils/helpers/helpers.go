package helpers

import (
	"context"
	"regexp"
	"strings"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

var nonSlugChars = regexp.MustCompile("[^a-z0-9]+")

// Slugify lowercases the title and collapses runs of non-alphanumerics
// into single dashes.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

func Ptr[T any](v T) *T {
	return &v
}
