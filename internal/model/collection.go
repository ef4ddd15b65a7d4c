package model

import "errors"

// ErrIndexOutOfRange is returned when a positional mutation targets a missing slot.
var ErrIndexOutOfRange = errors.New("bookmark index out of range")

// Collection is the ordered list of all bookmarks. Insertion order is significant.
type Collection []Bookmark

// IndexOfURL returns the index of the first bookmark with the given URL, or -1.
// URLs are expected to be unique; if they are not, later duplicates are never found.
func (c Collection) IndexOfURL(url string) int {
	for i := range c {
		if c[i].URL == url {
			return i
		}
	}
	return -1
}

// IndexOfID returns the index of the bookmark with the given ID, or -1.
func (c Collection) IndexOfID(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// FindByURL returns the first bookmark with the given URL.
func (c Collection) FindByURL(url string) (Bookmark, bool) {
	i := c.IndexOfURL(url)
	if i < 0 {
		return Bookmark{}, false
	}
	return c[i], true
}

// HasURL reports whether any bookmark uses the given URL.
func (c Collection) HasURL(url string) bool {
	return c.IndexOfURL(url) >= 0
}

// Clone returns a copy that shares no backing array with c.
// A nil collection clones to an empty, non-nil one.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// Equal reports whether both collections hold the same records in the same order.
func (c Collection) Equal(other Collection) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Append adds a bookmark at the end.
func (c *Collection) Append(b Bookmark) {
	*c = append(*c, b)
}

// ReplaceAt overwrites the bookmark at index i wholesale.
func (c *Collection) ReplaceAt(i int, b Bookmark) error {
	if i < 0 || i >= len(*c) {
		return ErrIndexOutOfRange
	}
	(*c)[i] = b
	return nil
}

// RemoveAt deletes the bookmark at index i, keeping the order of the rest.
func (c *Collection) RemoveAt(i int) (Bookmark, error) {
	if i < 0 || i >= len(*c) {
		return Bookmark{}, ErrIndexOutOfRange
	}
	removed := (*c)[i]
	*c = append((*c)[:i], (*c)[i+1:]...)
	return removed, nil
}

// EnsureIDs assigns a fresh ID to every bookmark that lacks one.
// Returns true if any bookmark was changed.
func (c Collection) EnsureIDs() bool {
	changed := false
	for i := range c {
		if c[i].ID == "" {
			c[i].ID = GenerateUUID()
			changed = true
		}
	}
	return changed
}

// Merge appends incoming bookmarks whose URL is not already present.
// Duplicates inside incoming are skipped as well.
func (c *Collection) Merge(incoming []Bookmark) (added, skipped int) {
	for _, b := range incoming {
		if c.HasURL(b.URL) {
			skipped++
			continue
		}
		if b.ID == "" {
			b.ID = GenerateUUID()
		}
		c.Append(b)
		added++
	}
	return added, skipped
}
