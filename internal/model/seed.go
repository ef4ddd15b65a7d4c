package model

// seedEntries is the demo content written on first run.
var seedEntries = []NewBookmarkParams{
	{URL: "https://developer.mozilla.org/", Title: "MDN Web Docs"},
	{URL: "https://caniuse.com/", Title: "Can I use"},
	{URL: "https://go.dev/doc/", Title: "Go Documentation"},
}

// Seed returns the three-entry demo collection with fresh IDs.
func Seed() Collection {
	c := make(Collection, 0, len(seedEntries))
	for _, p := range seedEntries {
		c = append(c, NewBookmark(p))
	}
	return c
}
