package utils

import (
	"regexp"
	"strings"

	"github.com/brycehall/stache/internal/constants"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a human-entered name:
// lower-case, every run of characters outside [a-z0-9] collapsed to a
// single hyphen, edge hyphens stripped. Names with no usable characters
// fall back to "stache".
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonSlugRun.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return constants.SlugFallback
	}
	return slug
}
