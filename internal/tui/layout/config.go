package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	List   ListConfig
	Modal  ModalConfig
	Input  InputConfig
	Text   TextConfig
	Picker PickerConfig
}

// ListConfig holds bookmark list dimension configuration.
type ListConfig struct {
	// HeightReduction is subtracted from terminal height for the list.
	// Accounts for: app padding (1) + header (1) + search row (2) + add form (3) + help bar (3) = 10
	HeightReduction int

	// MinHeight is the minimum list height in lines.
	MinHeight int

	// LinesPerItem is how many lines one bookmark occupies (title, URL).
	LinesPerItem int

	// ContentPadding is subtracted from terminal width for item rendering.
	ContentPadding int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// WidthPercent is the modal width as percentage of terminal width.
	WidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// Character limits
	TitleCharLimit  int
	URLCharLimit    int
	SearchCharLimit int

	// Display widths
	StandardWidth int // add and edit inputs
	SearchWidth   int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// PickerConfig holds quick search picker configuration.
type PickerConfig struct {
	// MaxVisible is the number of matches shown at once.
	MaxVisible int
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		List: ListConfig{
			HeightReduction: 10,
			MinHeight:       4,
			LinesPerItem:    2,
			ContentPadding:  4,
		},
		Modal: ModalConfig{
			WidthPercent: 50,
			MinWidth:     40,
			MaxWidth:     72,
		},
		Input: InputConfig{
			TitleCharLimit:  100,
			URLCharLimit:    500,
			SearchCharLimit: 100,
			StandardWidth:   40,
			SearchWidth:     30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
		Picker: PickerConfig{
			MaxVisible: 10,
		},
	}
}
