package search

import (
	"strings"

	"github.com/nikbrunner/bmlite/internal/model"
)

// Normalize trims and lower-cases a query. An empty result means "no filter".
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Matches reports whether the bookmark's title contains the query, ignoring case.
// URLs are never matched.
func Matches(query string, b model.Bookmark) bool {
	q := Normalize(query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Title), q)
}

// Filter returns the bookmarks whose title contains the query, in collection order.
// A blank query returns c itself.
func Filter(query string, c model.Collection) model.Collection {
	q := Normalize(query)
	if q == "" {
		return c
	}

	out := model.Collection{}
	for _, b := range c {
		if strings.Contains(strings.ToLower(b.Title), q) {
			out = append(out, b)
		}
	}
	return out
}
