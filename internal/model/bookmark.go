package model

import "strings"

// Bookmark represents a saved URL with a display title.
type Bookmark struct {
	ID    string `json:"id,omitempty"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// NewBookmarkParams holds parameters for creating a new Bookmark.
type NewBookmarkParams struct {
	URL   string
	Title string
}

// NewBookmark creates a Bookmark with a generated UUID.
// Surrounding whitespace is trimmed from both fields.
func NewBookmark(params NewBookmarkParams) Bookmark {
	return Bookmark{
		ID:    GenerateUUID(),
		URL:   strings.TrimSpace(params.URL),
		Title: strings.TrimSpace(params.Title),
	}
}
