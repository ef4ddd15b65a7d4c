// Package validate checks bookmark input before any command mutates state.
package validate

import (
	"net/url"
	"strings"
)

// Field identifies the input a validation error belongs to.
type Field int

const (
	FieldURL Field = iota
	FieldTitle
)

func (f Field) String() string {
	switch f {
	case FieldURL:
		return "url"
	case FieldTitle:
		return "title"
	default:
		return "unknown"
	}
}

// User-facing messages.
const (
	MsgURLRequired   = "Please enter a URL."
	MsgURLInvalid    = "Please enter a valid URL (http or https)."
	MsgTitleRequired = "Please enter a title."
)

// Error is a validation failure. Message is shown to the user as is.
// Err optionally carries a sentinel for errors.Is checks.
type Error struct {
	Field   Field
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// URL checks that s is an absolute http or https URL with a host.
func URL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return &Error{Field: FieldURL, Message: MsgURLRequired}
	}

	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return &Error{Field: FieldURL, Message: MsgURLInvalid}
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return nil
	default:
		return &Error{Field: FieldURL, Message: MsgURLInvalid}
	}
}

// Title checks that s is non-empty after trimming.
func Title(s string) error {
	if strings.TrimSpace(s) == "" {
		return &Error{Field: FieldTitle, Message: MsgTitleRequired}
	}
	return nil
}

// Bookmark validates both fields, URL first. Only the first failure is returned.
func Bookmark(rawURL, title string) error {
	if err := URL(rawURL); err != nil {
		return err
	}
	return Title(title)
}
