package tui

import (
	"errors"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/bmlite/internal/tui/layout"
	"github.com/nikbrunner/bmlite/internal/validate"
)

func TestFeedback_StaleTimerIgnored(t *testing.T) {
	var f Feedback

	f, first := f.Show("Bookmark added", time.Millisecond)
	assert.Assert(t, first != nil)
	firstGen := f.gen

	f, _ = f.Show("Bookmark deleted", time.Millisecond)
	assert.Equal(t, f.Text(), "Bookmark deleted")

	// The first timer fires after the second message was shown.
	f = f.Expire(firstGen)
	assert.Assert(t, f.Visible(), "older timer must not hide newer feedback")
	assert.Equal(t, f.Text(), "Bookmark deleted")

	f = f.Expire(f.gen)
	assert.Assert(t, !f.Visible())
	assert.Equal(t, f.Text(), "")
}

func TestFeedback_TickCarriesGeneration(t *testing.T) {
	f, cmd := Feedback{}.Show("x", time.Millisecond)
	msg, ok := cmd().(feedbackExpiredMsg)
	assert.Assert(t, ok)
	assert.Equal(t, msg.gen, f.gen)
}

func TestCycle(t *testing.T) {
	tests := []struct {
		name string
		cur  Selector
		back bool
		want Selector
	}{
		{"list to search", SelList, false, SelSearch},
		{"title wraps to list", SelAddTitle, false, SelList},
		{"back from list wraps", SelList, true, SelAddTitle},
		{"back from url", SelAddURL, true, SelSearch},
		{"unknown starts at first", SelEditURL, false, SelList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, cycle(addFields, tt.cur, tt.back), tt.want)
		})
	}
}

func newTestElements(native bool) *Elements {
	return NewElements(ElementsParams{Input: layout.DefaultConfig().Input, NativeValidation: native})
}

func TestElements_LazyAndMemoized(t *testing.T) {
	e := newTestElements(true)
	assert.Equal(t, e.Built(), 0)

	url := e.Input(SelAddURL)
	assert.Assert(t, url != nil)
	assert.Equal(t, e.Built(), 1)
	assert.Assert(t, e.Input(SelAddURL) == url)
	assert.Equal(t, e.Built(), 1)

	assert.Assert(t, e.Input(SelList) == nil)
	assert.Assert(t, e.Input(Selector("nope")) == nil)
	assert.Equal(t, e.Built(), 1)

	url.SetValue("https://kept.example")
	assert.Equal(t, e.Input(SelAddURL).Value(), "https://kept.example")
}

func TestElements_CheckValidity(t *testing.T) {
	tests := []struct {
		name       string
		native     bool
		url, title string
		wantOK     bool
		wantSel    Selector
		wantMsg    string
	}{
		{"valid native", true, "https://a.example", "A", true, "", ""},
		{"valid fallback", false, "https://a.example", "A", true, "", ""},
		{"empty url native", true, "", "A", false, SelAddURL, validate.MsgURLRequired},
		{"bad scheme fallback", false, "mailto:x@y.z", "A", false, SelAddURL, validate.MsgURLInvalid},
		{"url checked before title", false, "nope", "", false, SelAddURL, validate.MsgURLInvalid},
		{"blank title native", true, "https://a.example", " ", false, SelAddTitle, validate.MsgTitleRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestElements(tt.native)
			e.Input(SelAddURL).SetValue(tt.url)
			e.Input(SelAddTitle).SetValue(tt.title)

			bad, ok := e.CheckValidity(SelAddURL, SelAddTitle)
			assert.Equal(t, ok, tt.wantOK)
			if tt.wantOK {
				return
			}

			assert.Equal(t, bad.Selector, tt.wantSel)
			assert.Equal(t, bad.Native, tt.native)
			assert.Equal(t, bad.Err.Error(), tt.wantMsg)

			if tt.native {
				assert.Assert(t, e.Input(tt.wantSel).Err != nil, "native inputs carry their error")
				e.ClearErrors(SelAddURL, SelAddTitle)
				assert.Assert(t, e.Input(tt.wantSel).Err == nil)
			}
		})
	}
}

func TestFieldSelector(t *testing.T) {
	assert.Equal(t, fieldSelector(validate.FieldURL, false), SelAddURL)
	assert.Equal(t, fieldSelector(validate.FieldTitle, false), SelAddTitle)
	assert.Equal(t, fieldSelector(validate.FieldURL, true), SelEditURL)
	assert.Equal(t, fieldSelector(validate.FieldTitle, true), SelEditTitle)
}

func TestInvalid_ErrIsValidationError(t *testing.T) {
	e := newTestElements(false)
	bad, ok := e.CheckValidity(SelEditURL)
	assert.Assert(t, !ok)

	var verr *validate.Error
	assert.Assert(t, errors.As(bad.Err, &verr))
	assert.Equal(t, verr.Field, validate.FieldURL)
}
