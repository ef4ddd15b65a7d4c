// Package picker is the one-shot chooser behind quick search: it lists fuzzy
// matches and quits with the chosen bookmark.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/bmlite/internal/model"
	"github.com/nikbrunner/bmlite/internal/render"
	"github.com/nikbrunner/bmlite/internal/search"
	"github.com/nikbrunner/bmlite/internal/tui/layout"
)

// Action is what the user asked to do with the selection.
type Action int

const (
	ActionNone Action = iota
	ActionOpen
	ActionYank
)

// Params holds optional settings for New.
type Params struct {
	Styles *render.Styles
	Layout *layout.LayoutConfig
}

// Picker is a simple TUI for selecting from search results.
type Picker struct {
	results []search.Result
	query   string
	cursor  int
	action  Action
	styles  render.Styles
	layout  layout.LayoutConfig
	width   int
	height  int
}

// New creates a new Picker with the given search results.
func New(results []search.Result, query string, params Params) Picker {
	p := Picker{
		results: results,
		query:   query,
		styles:  render.DefaultStyles(),
		layout:  layout.DefaultConfig(),
		width:   80,
		height:  24,
	}
	if params.Styles != nil {
		p.styles = *params.Styles
	}
	if params.Layout != nil {
		p.layout = *params.Layout
	}
	return p
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.action = ActionNone
			return p, tea.Quit

		case tea.KeyEnter:
			if len(p.results) > 0 {
				p.action = ActionOpen
			}
			return p, tea.Quit

		case tea.KeyDown, tea.KeyCtrlN:
			p.moveDown()
			return p, nil

		case tea.KeyUp, tea.KeyCtrlP:
			p.moveUp()
			return p, nil
		}

		// Handle vim keys
		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				p.moveDown()
			case "k":
				p.moveUp()
			case "y":
				if len(p.results) > 0 {
					p.action = ActionYank
				}
				return p, tea.Quit
			case "q":
				p.action = ActionNone
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

func (p *Picker) moveDown() {
	if p.cursor < len(p.results)-1 {
		p.cursor++
	}
}

func (p *Picker) moveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	// Header
	b.WriteString(p.styles.Header.Render(fmt.Sprintf("Search: %s (%d results)", p.query, len(p.results))))
	b.WriteString("\n\n")

	if len(p.results) == 0 {
		b.WriteString(p.styles.Empty.Render("No bookmarks found!"))
		b.WriteString("\n")
	}

	itemWidth := p.width - 4
	start, end := layout.CalculateVisibleListItems(p.layout.Picker.MaxVisible, p.cursor, len(p.results))
	for i := start; i < end; i++ {
		b.WriteString(p.renderResult(p.results[i], i == p.cursor, itemWidth))
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(p.styles.Help.Render("j/k: move  Enter: open  y: yank  q/Esc: cancel"))

	return b.String()
}

func (p Picker) renderResult(r search.Result, selected bool, width int) string {
	cursor := "  "
	base := p.styles.Item
	if selected {
		cursor = "> "
		base = p.styles.LabelActive
	}

	title := render.Highlight(r.Bookmark.Title, r.MatchedIndexes, base, p.styles.Match)
	title = layout.TruncateANSIAware(title, width, p.layout.Text)
	url, _ := layout.TruncateText(r.Bookmark.URL, width-1, p.layout.Text)

	return cursor + title + "\n" + "   " + p.styles.URL.Render(url) + "\n"
}

// Selected returns the chosen bookmark and what to do with it.
// ok is false if the user cancelled.
func (p Picker) Selected() (model.Bookmark, Action, bool) {
	if p.action == ActionNone || p.cursor >= len(p.results) {
		return model.Bookmark{}, ActionNone, false
	}
	return p.results[p.cursor].Bookmark, p.action, true
}

// Cancelled returns true if the user quit without choosing.
func (p Picker) Cancelled() bool {
	return p.action == ActionNone
}
