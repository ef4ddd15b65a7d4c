package tui

import "github.com/nikbrunner/bmlite/internal/validate"

// Invalid describes the first input that failed validation.
type Invalid struct {
	Selector Selector
	Err      error
	// Native is true when the input reported the error itself (its Err is
	// set and rendered inline). Otherwise the caller shows a warning.
	Native bool
}

// CheckValidity validates the inputs in order and stops at the first failure.
// Inputs with a Validate func report natively; the rest fall back to the
// validate package.
func (e *Elements) CheckValidity(sels ...Selector) (Invalid, bool) {
	for _, sel := range sels {
		in := e.Input(sel)
		if in == nil {
			continue
		}

		if in.Validate != nil {
			in.Err = in.Validate(in.Value())
			if in.Err != nil {
				return Invalid{Selector: sel, Err: in.Err, Native: true}, false
			}
			continue
		}

		if err := fallbackValidate(sel, in.Value()); err != nil {
			return Invalid{Selector: sel, Err: err}, false
		}
	}
	return Invalid{}, true
}

// ClearErrors drops inline errors from the given inputs.
func (e *Elements) ClearErrors(sels ...Selector) {
	for _, in := range e.Inputs(sels...) {
		if in != nil {
			in.Err = nil
		}
	}
}

func fallbackValidate(sel Selector, value string) error {
	switch sel {
	case SelAddURL, SelEditURL:
		return validate.URL(value)
	case SelAddTitle, SelEditTitle:
		return validate.Title(value)
	default:
		return nil
	}
}

// fieldSelector maps a validation field to the input that should regain focus.
func fieldSelector(field validate.Field, editing bool) Selector {
	switch {
	case field == validate.FieldTitle && editing:
		return SelEditTitle
	case field == validate.FieldTitle:
		return SelAddTitle
	case editing:
		return SelEditURL
	default:
		return SelAddURL
	}
}
