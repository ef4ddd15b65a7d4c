// Package modal is the overlay state machine: closed, or exactly one of the
// warning, edit and delete-confirm panels.
package modal

// Kind tags the open panel.
type Kind int

const (
	KindClosed Kind = iota
	KindWarning
	KindEdit
	KindDeleteConfirm

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindClosed:
		return "closed"
	case KindWarning:
		return "warning"
	case KindEdit:
		return "edit"
	case KindDeleteConfirm:
		return "delete-confirm"
	default:
		return "unknown"
	}
}

// State is the payload of an open panel. Implemented by Warning, Edit and DeleteConfirm.
type State interface {
	Kind() Kind
}

// Warning shows a message. Refocus names the element to focus once dismissed.
type Warning struct {
	Message string
	Refocus string
}

// Edit holds the values being edited and the index they were resolved at.
type Edit struct {
	URL   string
	Title string
	Index int
}

// DeleteConfirm asks before removing the bookmark with URL.
type DeleteConfirm struct {
	URL   string
	Title string
}

func (Warning) Kind() Kind       { return KindWarning }
func (Edit) Kind() Kind          { return KindEdit }
func (DeleteConfirm) Kind() Kind { return KindDeleteConfirm }

// Controller tracks the open panel. The zero value is closed.
// It is a value type so it can live inside a Bubble Tea model.
type Controller struct {
	state   State
	visible [kindCount]bool
	refocus string
}

// Open shows the panel for s, hiding whatever was open before.
// The refocus target of a Warning is remembered until Close; opening a
// non-warning panel keeps the earlier target.
func (c Controller) Open(s State) Controller {
	if s == nil {
		return c.hideAll()
	}
	c = c.hideAll()
	c.state = s
	c.visible[s.Kind()] = true
	if w, ok := s.(Warning); ok && w.Refocus != "" {
		c.refocus = w.Refocus
	}
	return c
}

// Close hides every panel and hands back the remembered refocus target once.
func (c Controller) Close() (Controller, string, bool) {
	refocus := c.refocus
	c = c.hideAll()
	c.refocus = ""
	return c, refocus, refocus != ""
}

// Active returns the kind of the open panel.
func (c Controller) Active() Kind {
	if c.state == nil {
		return KindClosed
	}
	return c.state.Kind()
}

// State returns the open panel's payload, or nil when closed.
func (c Controller) State() State {
	return c.state
}

// IsOpen reports whether any panel is open.
func (c Controller) IsOpen() bool {
	return c.state != nil
}

// Visible reports whether the panel of kind k is shown.
func (c Controller) Visible(k Kind) bool {
	if k <= KindClosed || k >= kindCount {
		return false
	}
	return c.visible[k]
}

// VisiblePanels returns the kinds currently shown.
func (c Controller) VisiblePanels() []Kind {
	var out []Kind
	for k := KindWarning; k < kindCount; k++ {
		if c.visible[k] {
			out = append(out, k)
		}
	}
	return out
}

// WithEdit updates the values of an open edit panel. No-op otherwise.
func (c Controller) WithEdit(url, title string) Controller {
	if e, ok := c.state.(Edit); ok {
		e.URL = url
		e.Title = title
		c.state = e
	}
	return c
}

func (c Controller) hideAll() Controller {
	c.state = nil
	c.visible = [kindCount]bool{}
	return c
}
