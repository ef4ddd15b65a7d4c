package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/bmlite/internal/model"
	"github.com/nikbrunner/bmlite/internal/search"
	"github.com/nikbrunner/bmlite/internal/tui/layout"
)

func gitResults() []search.Result {
	return search.Fuzzy("git", model.Collection{
		{ID: "b1", Title: "GitHub", URL: "https://github.com"},
		{ID: "b2", Title: "GitLab", URL: "https://gitlab.com"},
		{ID: "b3", Title: "Go", URL: "https://go.dev"},
	})
}

func press(p Picker, msg tea.KeyMsg) (Picker, tea.Cmd) {
	newModel, cmd := p.Update(msg)
	return newModel.(Picker), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPicker_InitialState(t *testing.T) {
	p := New(gitResults(), "git", Params{})

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
	if len(p.results) != 2 {
		t.Errorf("expected 2 results, got %d", len(p.results))
	}
	if !p.Cancelled() {
		t.Error("nothing is chosen before a key is pressed")
	}
}

func TestPicker_Navigate(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"j moves down", []tea.KeyMsg{runes("j")}, 1},
		{"j stops at last", []tea.KeyMsg{runes("j"), runes("j"), runes("j")}, 1},
		{"k stops at first", []tea.KeyMsg{runes("k")}, 0},
		{"down then up", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyUp}}, 0},
		{"ctrl+n", []tea.KeyMsg{{Type: tea.KeyCtrlN}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(gitResults(), "git", Params{})
			for _, k := range tt.keys {
				p, _ = press(p, k)
			}
			if p.cursor != tt.want {
				t.Errorf("expected cursor at %d, got %d", tt.want, p.cursor)
			}
		})
	}
}

func TestPicker_SelectItem(t *testing.T) {
	p := New(gitResults(), "git", Params{})
	p.cursor = 1

	p, cmd := press(p, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected quit command after selection")
	}

	b, action, ok := p.Selected()
	if !ok {
		t.Fatal("expected a selection")
	}
	if action != ActionOpen {
		t.Errorf("expected ActionOpen, got %d", action)
	}
	if b.ID != p.results[1].Bookmark.ID {
		t.Errorf("expected %s, got %s", p.results[1].Bookmark.ID, b.ID)
	}
}

func TestPicker_Yank(t *testing.T) {
	p := New(gitResults(), "git", Params{})

	p, cmd := press(p, runes("y"))
	if cmd == nil {
		t.Error("expected quit command after yank")
	}
	if _, action, ok := p.Selected(); !ok || action != ActionYank {
		t.Errorf("expected yank selection, got %d %v", action, ok)
	}
}

func TestPicker_Cancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}, runes("q")} {
		p := New(gitResults(), "git", Params{})
		p, cmd := press(p, k)

		if !p.Cancelled() {
			t.Errorf("%s: expected cancelled", k)
		}
		if cmd == nil {
			t.Errorf("%s: expected quit command", k)
		}
		if _, _, ok := p.Selected(); ok {
			t.Errorf("%s: expected no selection", k)
		}
	}
}

func TestPicker_EnterWithoutResults(t *testing.T) {
	p := New(nil, "zzz", Params{})
	p, _ = press(p, tea.KeyMsg{Type: tea.KeyEnter})

	if _, _, ok := p.Selected(); ok {
		t.Error("expected no selection from an empty list")
	}
	if !strings.Contains(p.View(), "No bookmarks found!") {
		t.Error("expected empty message in view")
	}
}

func TestPicker_ViewScrollsWithCursor(t *testing.T) {
	c := make(model.Collection, 0, 5)
	for _, title := range []string{"alpha", "bravo", "charlie", "delta", "echo"} {
		c = append(c, model.Bookmark{Title: title, URL: "https://" + title + ".example"})
	}
	cfg := layout.DefaultConfig()
	cfg.Picker.MaxVisible = 2

	results := make([]search.Result, len(c))
	for i, b := range c {
		results[i] = search.Result{Bookmark: b, Index: i}
	}

	p := New(results, "", Params{Layout: &cfg})
	p.cursor = 3

	view := layout.StripANSI(p.View())
	if !strings.Contains(view, "> delta") {
		t.Errorf("expected cursor row in view, got:\n%s", view)
	}
	if strings.Contains(view, "alpha") {
		t.Errorf("expected alpha scrolled out, got:\n%s", view)
	}
}
