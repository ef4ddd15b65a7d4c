package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// feedbackExpiredMsg is delivered when a feedback timer fires.
type feedbackExpiredMsg struct {
	gen int
}

// Feedback is transient success text. Each Show starts a new generation;
// a timer from an older generation is ignored, so a new message is never
// hidden early by a previous timer.
type Feedback struct {
	text    string
	gen     int
	visible bool
}

// Show displays text and returns the command that hides it after d.
func (f Feedback) Show(text string, d time.Duration) (Feedback, tea.Cmd) {
	f.gen++
	f.text = text
	f.visible = true

	gen := f.gen
	return f, tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackExpiredMsg{gen: gen}
	})
}

// Expire hides the feedback if gen is the current generation.
func (f Feedback) Expire(gen int) Feedback {
	if gen == f.gen {
		f.visible = false
		f.text = ""
	}
	return f
}

// Visible reports whether feedback is shown.
func (f Feedback) Visible() bool {
	return f.visible
}

// Text returns the feedback text, or "" when hidden.
func (f Feedback) Text() string {
	if !f.visible {
		return ""
	}
	return f.text
}
