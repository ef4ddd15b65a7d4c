package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/bmlite/internal/modal"
	"github.com/nikbrunner/bmlite/internal/render"
	"github.com/nikbrunner/bmlite/internal/search"
	"github.com/nikbrunner/bmlite/internal/tui/layout"
)

// helpBarHeight is the number of lines below the modal area.
const helpBarHeight = 3

// renderView creates the complete view: header, search row, list, add form
// and help bar. An open modal replaces the whole screen.
func (a App) renderView() string {
	if a.modal.IsOpen() {
		return a.renderModal()
	}

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			a.renderHeader(),
			a.renderSearchRow(),
			"",
			a.renderList(),
			"",
			a.renderAddForm(),
			a.renderHelpBar(),
		),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

func (a App) renderHeader() string {
	return a.styles.Header.Render("bmlite")
}

// renderSearchRow renders the search input and, while a query is active,
// the result count with its clear control.
func (a App) renderSearchRow() string {
	row := a.renderLabel("Search", SelSearch) + " " + a.elements.Input(SelSearch).View()

	indicator := render.Count(len(a.visible), search.Normalize(a.query) != "")
	if count := indicator.Render(a.styles); count != "" {
		row += "  " + count
	}
	return row
}

func (a App) renderList() string {
	listHeight := layout.CalculateListHeight(a.height, a.layoutConfig.List)
	visibleItems := layout.CalculateVisibleItems(listHeight, a.layoutConfig.List)
	offset := layout.CalculateViewportOffset(a.cursor, len(a.visible), visibleItems)

	// Only the focused list shows its cursor row
	cursor := -1
	if a.focus == SelList {
		cursor = a.cursor
	}

	empty := "No bookmarks yet. Press a to add one."
	if search.Normalize(a.query) != "" {
		empty = ""
	}

	return render.List(a.visible, render.ListOptions{
		Cursor:  cursor,
		Offset:  offset,
		Visible: visibleItems,
		Width:   layout.CalculateItemWidth(a.width, a.layoutConfig.List),
		Styles:  a.styles,
		Text:    a.layoutConfig.Text,
		Empty:   empty,
	})
}

// renderAddForm renders the URL and title inputs side by side.
func (a App) renderAddForm() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		a.styles.Header.Render("Add")+"  ",
		a.renderField("URL", SelAddURL, a.reportAdd),
		"  ",
		a.renderField("Title", SelAddTitle, a.reportAdd),
	)
}

// renderField renders a labelled input with its inline error below it.
func (a App) renderField(label string, sel Selector, showErr bool) string {
	in := a.elements.Input(sel)
	field := a.renderLabel(label, sel) + " " + in.View()
	if showErr && in.Err != nil {
		field += "\n" + a.styles.Error.Render(in.Err.Error())
	}
	return field
}

func (a App) renderLabel(label string, sel Selector) string {
	if a.focus == sel {
		return a.styles.LabelActive.Render(label)
	}
	return a.styles.Label.Render(label)
}

// modalAreaHeight is the height the modal box is centered in.
func (a App) modalAreaHeight() int {
	h := a.height - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// modalRect returns the screen position and size of the open modal box.
func (a App) modalRect() (x, y, w, h int) {
	box := a.renderModalBox()
	w, h = lipgloss.Width(box), lipgloss.Height(box)
	x, y = layout.ModalBounds(a.width, a.modalAreaHeight(), w, h)
	return x, y, w, h
}

func (a App) renderModal() string {
	// Place modal in center, then add help bar at bottom
	box := lipgloss.Place(
		a.width,
		a.modalAreaHeight(),
		lipgloss.Center,
		lipgloss.Center,
		a.renderModalBox(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, box, a.renderHelpBar())
}

func (a App) renderModalBox() string {
	var title, content strings.Builder

	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.WidthPercent, a.layoutConfig.Modal)

	switch s := a.modal.State().(type) {
	case modal.Warning:
		title.WriteString("Warning")
		content.WriteString(a.styles.Warning.Render(s.Message) + "\n\n")
		content.WriteString(a.renderHintsInline([]Hint{
			{Key: "Enter", Desc: "ok"},
			{Key: "Esc", Desc: "close"},
		}))

	case modal.Edit:
		title.WriteString("Edit Bookmark")
		content.WriteString(a.renderField("URL  ", SelEditURL, a.reportEdit))
		content.WriteString("\n\n")
		content.WriteString(a.renderField("Title", SelEditTitle, a.reportEdit))
		content.WriteString("\n\n")
		content.WriteString(a.renderHintsInline([]Hint{
			{Key: "Enter", Desc: "save"},
			{Key: "Tab", Desc: "next"},
			{Key: "Ctrl+d", Desc: "delete"},
			{Key: "Esc", Desc: "cancel"},
		}))

	case modal.DeleteConfirm:
		title.WriteString("Delete Bookmark?")
		content.WriteString("\"" + s.Title + "\"\n")
		content.WriteString(a.styles.URL.Render(s.URL) + "\n\n")
		content.WriteString(a.styles.Help.Render("This action cannot be undone.") + "\n\n")
		content.WriteString(a.renderHintsInline([]Hint{
			{Key: "Enter", Desc: "confirm"},
			{Key: "Esc", Desc: "cancel"},
		}))
	}

	return a.styles.Modal.Width(modalWidth).Render(
		a.styles.ModalTitle.Render(title.String()) + "\n\n" + content.String(),
	)
}

func (a App) renderHelpBar() string {
	var lines []string

	// Line 1: Empty spacer OR message (message replaces the gap)
	if line := a.renderMessageLine(); line != "" {
		lines = append(lines, line)
	} else {
		lines = append(lines, "")
	}

	// Line 2: contextual keyboard hints
	if hints := a.renderHints(a.getContextualHints()); hints != "" {
		lines = append(lines, a.styles.HintLabel.Render("Keys  ")+hints)
	}

	return strings.Join(lines, "\n")
}

// renderMessageLine renders feedback, or the status message with a prefix
// icon based on its type. Feedback wins while it is visible.
func (a App) renderMessageLine() string {
	if a.feedback.Visible() {
		return a.styles.Success.Render("✓ " + a.feedback.Text())
	}
	if a.status.text == "" {
		return ""
	}

	switch a.status.kind {
	case MessageError:
		return a.styles.Error.Render("✗ " + a.status.text)
	case MessageWarning:
		return a.styles.Warning.Render("⚠ " + a.status.text)
	case MessageSuccess:
		return a.styles.Success.Render("✓ " + a.status.text)
	default: // MessageInfo
		return a.styles.Header.Render(a.status.text)
	}
}
