package render

import "strconv"

// Class is the visual state of the count indicator.
type Class int

const (
	ClassNone Class = iota
	ClassEmpty
	ClassFound
)

// Indicator describes the result count shown next to the search input.
// Nothing is shown, including the clear-search control, unless a query is active.
type Indicator struct {
	Text         string
	Class        Class
	Visible      bool
	ClearVisible bool
}

// Count builds the indicator for n results.
func Count(n int, hasQuery bool) Indicator {
	var text string
	switch n {
	case 0:
		text = "No bookmarks found!"
	case 1:
		text = "1 bookmark found"
	default:
		text = strconv.Itoa(n) + " bookmarks found"
	}

	ind := Indicator{Text: text}
	if !hasQuery {
		return ind
	}

	ind.Visible = true
	ind.ClearVisible = true
	if n == 0 {
		ind.Class = ClassEmpty
	} else {
		ind.Class = ClassFound
	}
	return ind
}

// Render returns the styled indicator, or "" when hidden.
func (i Indicator) Render(s Styles) string {
	if !i.Visible {
		return ""
	}

	style := s.Help
	switch i.Class {
	case ClassFound:
		style = s.CountFound
	case ClassEmpty:
		style = s.CountEmpty
	}

	out := style.Render(i.Text)
	if i.ClearVisible {
		out += "  " + s.Clear.Render("clear")
	}
	return out
}
