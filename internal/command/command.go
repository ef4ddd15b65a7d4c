// Package command implements the bookmark mutations. Each command re-reads the
// whole collection, changes one record, and writes the whole collection back.
// Validation and lookups happen before anything is written, so a command
// either fully commits or leaves storage untouched.
package command

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nikbrunner/bmlite/internal/model"
	"github.com/nikbrunner/bmlite/internal/storage"
	"github.com/nikbrunner/bmlite/internal/validate"
)

// MsgDuplicateURL is shown when a URL is already bookmarked.
const MsgDuplicateURL = "This bookmark already exists."

var (
	// ErrDuplicateURL is wrapped by the validation error returned for a taken URL.
	ErrDuplicateURL = errors.New("duplicate bookmark url")
	// ErrStaleEdit means the record being edited moved or vanished since BeginEdit.
	ErrStaleEdit = errors.New("bookmark changed since edit began")
)

// HandlerParams holds parameters for creating a Handler.
type HandlerParams struct {
	Storage storage.Storage
	Logger  *log.Logger
}

// Handler runs commands against a Storage.
type Handler struct {
	storage storage.Storage
	logger  *log.Logger
}

// NewHandler creates a Handler.
func NewHandler(params HandlerParams) *Handler {
	logger := params.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Handler{storage: params.Storage, logger: logger}
}

// Result is the outcome of a committed command.
type Result struct {
	Bookmark   model.Bookmark   // the record created, written or removed
	Collection model.Collection // the collection as persisted
}

// EditSession remembers which record an edit targets.
type EditSession struct {
	Index    int
	Original model.Bookmark
}

// PendingDelete is a delete awaiting confirmation.
type PendingDelete struct {
	URL   string
	Title string
}

// List returns the stored collection.
func (h *Handler) List() (model.Collection, error) {
	return h.storage.Load()
}

// Create validates and appends a new bookmark.
func (h *Handler) Create(rawURL, title string) (Result, error) {
	if err := validate.Bookmark(rawURL, title); err != nil {
		return Result{}, err
	}

	c, err := h.storage.Load()
	if err != nil {
		return Result{}, err
	}

	b := model.NewBookmark(model.NewBookmarkParams{URL: rawURL, Title: title})
	if c.HasURL(b.URL) {
		return Result{}, duplicate()
	}

	c.Append(b)
	if err := h.storage.Save(c); err != nil {
		return Result{}, err
	}

	h.logger.Info("bookmark created", "url", b.URL)
	return Result{Bookmark: b, Collection: c}, nil
}

// BeginEdit resolves the first bookmark with targetURL.
// ok is false when nothing matches; that is not an error.
func (h *Handler) BeginEdit(targetURL string) (EditSession, bool, error) {
	c, err := h.storage.Load()
	if err != nil {
		return EditSession{}, false, err
	}

	i := c.IndexOfURL(targetURL)
	if i < 0 {
		h.logger.Debug("edit target not found", "url", targetURL)
		return EditSession{}, false, nil
	}

	return EditSession{Index: i, Original: c[i]}, true, nil
}

// ConfirmEdit validates and replaces the record the session points at.
// The record keeps its ID; URL and title are replaced wholesale.
func (h *Handler) ConfirmEdit(s EditSession, rawURL, title string) (Result, error) {
	if err := validate.Bookmark(rawURL, title); err != nil {
		return Result{}, err
	}

	c, err := h.storage.Load()
	if err != nil {
		return Result{}, err
	}

	if s.Index < 0 || s.Index >= len(c) || c[s.Index].ID != s.Original.ID {
		h.logger.Warn("edit target moved", "url", s.Original.URL, "index", s.Index)
		return Result{}, ErrStaleEdit
	}

	updated := model.Bookmark{
		ID:    s.Original.ID,
		URL:   strings.TrimSpace(rawURL),
		Title: strings.TrimSpace(title),
	}
	if i := c.IndexOfURL(updated.URL); i >= 0 && i != s.Index {
		return Result{}, duplicate()
	}

	if err := c.ReplaceAt(s.Index, updated); err != nil {
		return Result{}, err
	}
	if err := h.storage.Save(c); err != nil {
		return Result{}, err
	}

	h.logger.Info("bookmark updated", "url", updated.URL)
	return Result{Bookmark: updated, Collection: c}, nil
}

// RequestDelete resolves the title shown in the confirmation prompt.
// ok is false when nothing matches.
func (h *Handler) RequestDelete(targetURL string) (PendingDelete, bool, error) {
	c, err := h.storage.Load()
	if err != nil {
		return PendingDelete{}, false, err
	}

	b, ok := c.FindByURL(targetURL)
	if !ok {
		h.logger.Debug("delete target not found", "url", targetURL)
		return PendingDelete{}, false, nil
	}

	return PendingDelete{URL: b.URL, Title: b.Title}, true, nil
}

// ConfirmDelete re-reads storage and removes the first record with the pending URL.
// A miss is logged and reported as removed == false with a nil error.
func (h *Handler) ConfirmDelete(p PendingDelete) (Result, bool, error) {
	c, err := h.storage.Load()
	if err != nil {
		return Result{}, false, err
	}

	i := c.IndexOfURL(p.URL)
	if i < 0 {
		h.logger.Warn("bookmark to delete not found", "url", p.URL)
		return Result{Collection: c}, false, nil
	}

	removed, err := c.RemoveAt(i)
	if err != nil {
		return Result{}, false, err
	}
	if err := h.storage.Save(c); err != nil {
		return Result{}, false, err
	}

	h.logger.Info("bookmark deleted", "url", removed.URL)
	return Result{Bookmark: removed, Collection: c}, true, nil
}

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Added   int
	Skipped int // duplicates by URL
	Invalid int // failed validation
}

// Import appends bookmarks in one write. Invalid records and URLs already
// present are skipped.
func (h *Handler) Import(incoming []model.Bookmark) (ImportResult, error) {
	var res ImportResult

	valid := make([]model.Bookmark, 0, len(incoming))
	for _, b := range incoming {
		if err := validate.Bookmark(b.URL, b.Title); err != nil {
			h.logger.Debug("skipping invalid import", "url", b.URL, "err", err)
			res.Invalid++
			continue
		}
		b.URL = strings.TrimSpace(b.URL)
		b.Title = strings.TrimSpace(b.Title)
		valid = append(valid, b)
	}

	c, err := h.storage.Load()
	if err != nil {
		return res, err
	}

	res.Added, res.Skipped = c.Merge(valid)
	if res.Added == 0 {
		return res, nil
	}
	if err := h.storage.Save(c); err != nil {
		return ImportResult{}, err
	}

	h.logger.Info("bookmarks imported", "added", res.Added, "skipped", res.Skipped, "invalid", res.Invalid)
	return res, nil
}

func duplicate() error {
	return &validate.Error{Field: validate.FieldURL, Message: MsgDuplicateURL, Err: ErrDuplicateURL}
}
