// Package render turns bookmark collections into terminal text.
// Every call renders from scratch; nothing is patched in place.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/bmlite/internal/model"
	"github.com/nikbrunner/bmlite/internal/tui/layout"
)

// Action is an affordance on a rendered row.
type Action int

const (
	ActionEdit Action = iota
	ActionDelete
)

// Item is one rendered row. Key is the correlation key (the bookmark URL)
// that the row's edit and delete affordances act on.
type Item struct {
	Key     string
	Title   string
	URL     string
	Actions []Action
}

// Items maps each bookmark to its row.
func Items(c model.Collection) []Item {
	items := make([]Item, len(c))
	for i, b := range c {
		items[i] = Item{
			Key:     b.URL,
			Title:   b.Title,
			URL:     b.URL,
			Actions: []Action{ActionEdit, ActionDelete},
		}
	}
	return items
}

// ListOptions controls List output.
type ListOptions struct {
	Cursor  int // index of the highlighted row, -1 for none
	Offset  int // first row to render
	Visible int // rows to render; 0 renders all
	Width   int
	Styles  Styles
	Text    layout.TextConfig
	Empty   string // shown when c is empty
}

// List renders the rows of c.
func List(c model.Collection, opts ListOptions) string {
	if len(c) == 0 {
		return opts.Styles.Empty.Render(opts.Empty)
	}

	items := Items(c)
	start, end := opts.Offset, len(items)
	if start < 0 || start >= len(items) {
		start = 0
	}
	if opts.Visible > 0 && start+opts.Visible < end {
		end = start + opts.Visible
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, RenderItem(items[i], i == opts.Cursor, opts))
	}
	return strings.Join(rows, "\n")
}

// RenderItem renders one row: the title line with affordances on the cursor
// row, then the URL line.
func RenderItem(item Item, selected bool, opts ListOptions) string {
	width := opts.Width
	if width < 1 {
		width = 1
	}

	prefix := "  "
	var actions string
	if selected {
		prefix = "▸ "
		actions = " " + renderActions(item.Actions)
	}

	titleWidth := width - layout.VisibleLength(actions)
	title, _ := layout.TruncateWithPrefixSuffix(item.Title, titleWidth, prefix, "", opts.Text)

	var titleLine string
	if selected {
		// Pad to fill width for highlight
		pad := titleWidth - layout.VisibleLength(title)
		if pad > 0 {
			title += strings.Repeat(" ", pad)
		}
		titleLine = opts.Styles.ItemSelected.Render(title) + opts.Styles.Action.Render(actions)
	} else {
		titleLine = opts.Styles.Item.Render(title)
	}

	url, _ := layout.TruncateText(item.URL, width-2, opts.Text)
	urlLine := "  " + opts.Styles.URL.Render(url)

	return lipgloss.JoinVertical(lipgloss.Left, titleLine, urlLine)
}

func renderActions(actions []Action) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		switch a {
		case ActionEdit:
			parts = append(parts, "[e]dit")
		case ActionDelete:
			parts = append(parts, "[d]elete")
		}
	}
	return strings.Join(parts, " ")
}

// Highlight renders text with the runes starting at the matched byte offsets
// in the match style. Offsets are as reported by the fuzzy matcher.
func Highlight(text string, matched []int, base, match lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(text)
	}

	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	var b strings.Builder
	for i, r := range text {
		if hit[i] {
			b.WriteString(match.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
