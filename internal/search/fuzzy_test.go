package search

import (
	"testing"

	"github.com/nikbrunner/bmlite/internal/model"
)

func fuzzyFixture() model.Collection {
	return model.Collection{
		{ID: "b1", Title: "GitHub", URL: "https://github.com"},
		{ID: "b2", Title: "GitLab", URL: "https://gitlab.com"},
		{ID: "b3", Title: "TanStack Router", URL: "https://tanstack.com/router"},
		{ID: "b4", Title: "React Documentation", URL: "https://react.dev"},
	}
}

func TestFuzzy_EmptyQuery(t *testing.T) {
	results := Fuzzy("", fuzzyFixture())

	if len(results) != 0 {
		t.Errorf("expected 0 results for empty query, got %d", len(results))
	}
}

func TestFuzzy_ExactMatch(t *testing.T) {
	results := Fuzzy("GitHub", fuzzyFixture())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Bookmark.Title != "GitHub" {
		t.Errorf("expected GitHub, got %s", results[0].Bookmark.Title)
	}
	if results[0].Index != 0 {
		t.Errorf("expected index 0, got %d", results[0].Index)
	}
}

func TestFuzzy_FuzzyMatch(t *testing.T) {
	results := Fuzzy("tsr", fuzzyFixture())

	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if results[0].Bookmark.ID != "b3" {
		t.Errorf("expected TanStack Router first, got %s", results[0].Bookmark.Title)
	}
	if len(results[0].MatchedIndexes) != 3 {
		t.Errorf("expected 3 matched indexes, got %d", len(results[0].MatchedIndexes))
	}
}

func TestFuzzy_NoMatch(t *testing.T) {
	results := Fuzzy("zzzz", fuzzyFixture())

	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestBookmarks(t *testing.T) {
	got := Bookmarks(Fuzzy("Git", fuzzyFixture()))

	if len(got) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(got))
	}
}
