package render

import "github.com/charmbracelet/lipgloss"

// Palette colors shared by the TUI and the quick search picker.
// Industrial design: grayscale with single desaturated teal accent.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	ColorSubtle  = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"} // secondary text
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"} // desaturated teal
	ColorBorder  = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"} // inactive borders
	ColorError   = lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}
)

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Header       lipgloss.Style
	Label        lipgloss.Style // input labels ("Search", "URL", "Title")
	LabelActive  lipgloss.Style // label of the focused input
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	URL          lipgloss.Style
	Action       lipgloss.Style // edit/delete affordances on the cursor row
	Empty        lipgloss.Style
	CountFound   lipgloss.Style
	CountEmpty   lipgloss.Style
	Clear        lipgloss.Style // clear-search control
	Modal        lipgloss.Style
	ModalTitle   lipgloss.Style
	Help         lipgloss.Style
	HintKey      lipgloss.Style // Key portion of hints (e.g., "Enter", "j/k")
	HintDesc     lipgloss.Style // Description portion of hints (e.g., "confirm", "move")
	HintLabel    lipgloss.Style
	Match        lipgloss.Style // fuzzy-matched runes in the picker
	Error        lipgloss.Style
	Warning      lipgloss.Style
	Success      lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent),

		Label: lipgloss.NewStyle().
			Foreground(ColorSubtle),

		LabelActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent),

		Item: lipgloss.NewStyle().
			Foreground(ColorPrimary),

		ItemSelected: lipgloss.NewStyle().
			Background(ColorAccent).
			Foreground(lipgloss.Color("#1A1A1A")),

		URL: lipgloss.NewStyle().
			Foreground(ColorSubtle),

		Action: lipgloss.NewStyle().
			Foreground(ColorAccent),

		Empty: lipgloss.NewStyle().
			Foreground(ColorSubtle),

		CountFound: lipgloss.NewStyle().
			Foreground(ColorSuccess),

		CountEmpty: lipgloss.NewStyle().
			Foreground(ColorError),

		Clear: lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Underline(true),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2),

		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent),

		Help: lipgloss.NewStyle().
			Foreground(ColorSubtle),

		HintKey: lipgloss.NewStyle().
			Foreground(ColorSubtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(ColorSubtle),

		HintLabel: lipgloss.NewStyle().
			Foreground(ColorBorder),

		Match: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent),

		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
	}
}
