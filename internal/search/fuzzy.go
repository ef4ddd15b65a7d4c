package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/nikbrunner/bmlite/internal/model"
)

// Result represents a fuzzy search match.
type Result struct {
	Bookmark       model.Bookmark
	Index          int // position in the searched collection
	MatchedIndexes []int
	Score          int
}

// titles implements fuzzy.Source over a collection.
type titles model.Collection

func (t titles) String(i int) string {
	return t[i].Title
}

func (t titles) Len() int {
	return len(t)
}

// Fuzzy searches bookmarks by title using fuzzy matching.
// Returns results sorted by match score (best first).
func Fuzzy(query string, c model.Collection) []Result {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, titles(c))

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Bookmark:       c[m.Index],
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}

// Bookmarks returns the bookmarks of results, in result order.
func Bookmarks(results []Result) model.Collection {
	out := make(model.Collection, len(results))
	for i, r := range results {
		out[i] = r.Bookmark
	}
	return out
}
