package model_test

import (
	"encoding/json"
	"testing"

	"github.com/nikbrunner/bmlite/internal/model"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func sample() model.Collection {
	return model.Collection{
		{ID: "b1", URL: "https://developer.mozilla.org/", Title: "MDN Web Docs"},
		{ID: "b2", URL: "https://caniuse.com/", Title: "Can I use"},
		{ID: "b3", URL: "https://go.dev/doc/", Title: "Go Documentation"},
	}
}

func TestBookmark_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(model.Bookmark{URL: "https://example.com", Title: "Example"})
	assert.NilError(t, err)

	// Records without an ID keep the plain {url, title} layout.
	assert.Equal(t, string(data), `{"url":"https://example.com","title":"Example"}`)
}

func TestNewBookmark_TrimsAndAssignsID(t *testing.T) {
	b := model.NewBookmark(model.NewBookmarkParams{URL: "  https://x.com ", Title: "\tX\n"})

	assert.Equal(t, b.URL, "https://x.com")
	assert.Equal(t, b.Title, "X")
	assert.Assert(t, b.ID != "", "expected generated ID")
}

func TestSeed(t *testing.T) {
	seed := model.Seed()

	assert.Assert(t, is.Len(seed, 3))
	assert.Assert(t, seed.HasURL("https://caniuse.com/"))

	ids := map[string]bool{}
	for _, b := range seed {
		ids[b.ID] = true
	}
	assert.Equal(t, len(ids), 3, "seed IDs must be unique")
}

func TestCollection_IndexOfURL(t *testing.T) {
	c := sample()
	c = append(c, model.Bookmark{ID: "dup", URL: "https://caniuse.com/", Title: "Duplicate"})

	tests := []struct {
		name string
		url  string
		want int
	}{
		{"first", "https://developer.mozilla.org/", 0},
		{"duplicate resolves to first match", "https://caniuse.com/", 1},
		{"missing", "https://nowhere.example", -1},
		{"case sensitive", "https://CANIUSE.com/", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, c.IndexOfURL(tt.url), tt.want)
		})
	}
}

func TestCollection_FindByURL(t *testing.T) {
	c := sample()

	b, ok := c.FindByURL("https://go.dev/doc/")
	assert.Assert(t, ok)
	assert.Equal(t, b.Title, "Go Documentation")

	_, ok = c.FindByURL("https://missing.example")
	assert.Assert(t, !ok)
}

func TestCollection_ReplaceAt(t *testing.T) {
	c := sample()

	err := c.ReplaceAt(1, model.Bookmark{ID: "b2", URL: "https://caniuse.com/", Title: "CanIUse"})
	assert.NilError(t, err)
	assert.Equal(t, c[1].Title, "CanIUse")
	assert.Equal(t, c[0].Title, "MDN Web Docs")
	assert.Equal(t, c[2].Title, "Go Documentation")

	assert.ErrorIs(t, c.ReplaceAt(3, model.Bookmark{}), model.ErrIndexOutOfRange)
	assert.ErrorIs(t, c.ReplaceAt(-1, model.Bookmark{}), model.ErrIndexOutOfRange)
}

func TestCollection_RemoveAt_PreservesOrder(t *testing.T) {
	c := sample()

	removed, err := c.RemoveAt(1)
	assert.NilError(t, err)
	assert.Equal(t, removed.ID, "b2")
	assert.Assert(t, is.Len(c, 2))
	assert.Equal(t, c[0].ID, "b1")
	assert.Equal(t, c[1].ID, "b3")

	_, err = c.RemoveAt(5)
	assert.ErrorIs(t, err, model.ErrIndexOutOfRange)
}

func TestCollection_CloneIsIndependent(t *testing.T) {
	c := sample()
	clone := c.Clone()
	clone[0].Title = "Changed"

	assert.Equal(t, c[0].Title, "MDN Web Docs")
	assert.Assert(t, !c.Equal(clone))

	var empty model.Collection
	assert.Assert(t, empty.Clone() != nil, "clone of nil should be non-nil")
}

func TestCollection_EnsureIDs(t *testing.T) {
	c := model.Collection{
		{URL: "https://a.example", Title: "A"},
		{ID: "keep", URL: "https://b.example", Title: "B"},
	}

	assert.Assert(t, c.EnsureIDs())
	assert.Assert(t, c[0].ID != "")
	assert.Equal(t, c[1].ID, "keep")

	assert.Assert(t, !c.EnsureIDs(), "second pass should change nothing")
}

func TestCollection_Merge_SkipsDuplicateURLs(t *testing.T) {
	c := sample()

	added, skipped := c.Merge([]model.Bookmark{
		{URL: "https://caniuse.com/", Title: "Duplicate"},
		{URL: "https://new.example", Title: "New"},
		{URL: "https://new.example", Title: "New again"},
	})

	assert.Equal(t, added, 1)
	assert.Equal(t, skipped, 2)
	assert.Assert(t, is.Len(c, 4))
	assert.Equal(t, c[3].Title, "New")
	assert.Assert(t, c[3].ID != "")
}
