package tui

// MessageType is the severity of the status line message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
	MessageSuccess
)

// addFields is the tab order of the add form, starting from the list.
var addFields = []Selector{SelList, SelSearch, SelAddURL, SelAddTitle}

// editFields is the tab order inside the edit modal.
var editFields = []Selector{SelEditURL, SelEditTitle}

// cycle returns the selector after (or before, when back is set) cur in order.
// An unknown cur starts from the first entry.
func cycle(order []Selector, cur Selector, back bool) Selector {
	idx := -1
	for i, s := range order {
		if s == cur {
			idx = i
			break
		}
	}
	if idx < 0 {
		return order[0]
	}
	if back {
		return order[(idx-1+len(order))%len(order)]
	}
	return order[(idx+1)%len(order)]
}

// statusMessage is a line of text on the status bar that persists until replaced.
type statusMessage struct {
	text string
	kind MessageType
}
