package validate_test

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/bmlite/internal/validate"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"https", "https://example.com", ""},
		{"http with path", "http://example.com/a?b=c#d", ""},
		{"surrounding space", "  https://example.com  ", ""},
		{"uppercase scheme", "HTTPS://example.com", ""},
		{"empty", "", validate.MsgURLRequired},
		{"blank", "   ", validate.MsgURLRequired},
		{"no scheme", "example.com", validate.MsgURLInvalid},
		{"ftp", "ftp://example.com", validate.MsgURLInvalid},
		{"javascript", "javascript:alert(1)", validate.MsgURLInvalid},
		{"no host", "https://", validate.MsgURLInvalid},
		{"garbage", "ht!tp://%%", validate.MsgURLInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.URL(tt.input)
			if tt.wantMsg == "" {
				assert.NilError(t, err)
				return
			}
			var verr *validate.Error
			assert.Assert(t, errors.As(err, &verr), "expected *validate.Error, got %v", err)
			assert.Equal(t, verr.Field, validate.FieldURL)
			assert.Equal(t, verr.Message, tt.wantMsg)
		})
	}
}

func TestTitle(t *testing.T) {
	assert.NilError(t, validate.Title("Go"))
	assert.Error(t, validate.Title(" \n\t"), validate.MsgTitleRequired)
}

func TestBookmark_URLCheckedFirst(t *testing.T) {
	err := validate.Bookmark("", "")

	var verr *validate.Error
	assert.Assert(t, errors.As(err, &verr))
	assert.Equal(t, verr.Field, validate.FieldURL)

	err = validate.Bookmark("https://example.com", "")
	assert.Assert(t, errors.As(err, &verr))
	assert.Equal(t, verr.Field, validate.FieldTitle)

	assert.NilError(t, validate.Bookmark("https://example.com", "Example"))
}

func TestField_String(t *testing.T) {
	assert.Equal(t, validate.FieldURL.String(), "url")
	assert.Equal(t, validate.FieldTitle.String(), "title")
}
