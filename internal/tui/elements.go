package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/nikbrunner/bmlite/internal/tui/layout"
	"github.com/nikbrunner/bmlite/internal/validate"
)

// Selector names a UI element.
type Selector string

const (
	SelSearch    Selector = "search"
	SelAddURL    Selector = "add-url"
	SelAddTitle  Selector = "add-title"
	SelEditURL   Selector = "edit-url"
	SelEditTitle Selector = "edit-title"

	// SelList is the bookmark list. It has no input behind it.
	SelList Selector = "list"
)

// ElementsParams holds parameters for creating Elements.
type ElementsParams struct {
	Input layout.InputConfig
	// NativeValidation attaches a validator to URL and title inputs so they
	// report their own errors.
	NativeValidation bool
}

// Elements lazily builds text inputs by selector and memoizes them for the
// life of the App. There is no invalidation: an input keeps its value until
// it is reset explicitly.
type Elements struct {
	cfg    layout.InputConfig
	native bool
	inputs map[Selector]*textinput.Model
	built  int
}

// NewElements creates an empty cache.
func NewElements(params ElementsParams) *Elements {
	return &Elements{
		cfg:    params.Input,
		native: params.NativeValidation,
		inputs: make(map[Selector]*textinput.Model),
	}
}

// Input returns the input for sel, building it on first use.
// Returns nil for selectors that have no input.
func (e *Elements) Input(sel Selector) *textinput.Model {
	if in, ok := e.inputs[sel]; ok {
		return in
	}

	in := e.build(sel)
	if in == nil {
		return nil
	}
	e.inputs[sel] = in
	e.built++
	return in
}

// Inputs returns the inputs for sels, in order.
func (e *Elements) Inputs(sels ...Selector) []*textinput.Model {
	out := make([]*textinput.Model, len(sels))
	for i, sel := range sels {
		out[i] = e.Input(sel)
	}
	return out
}

// Built returns how many inputs have been constructed.
func (e *Elements) Built() int {
	return e.built
}

func (e *Elements) build(sel Selector) *textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Width = e.cfg.StandardWidth

	switch sel {
	case SelSearch:
		in.Placeholder = "Search titles..."
		in.CharLimit = e.cfg.SearchCharLimit
		in.Width = e.cfg.SearchWidth
	case SelAddURL, SelEditURL:
		in.Placeholder = "https://..."
		in.CharLimit = e.cfg.URLCharLimit
		if e.native {
			in.Validate = validate.URL
		}
	case SelAddTitle, SelEditTitle:
		in.Placeholder = "Title"
		in.CharLimit = e.cfg.TitleCharLimit
		if e.native {
			in.Validate = validate.Title
		}
	default:
		return nil
	}

	return &in
}
