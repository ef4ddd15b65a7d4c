package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/bmlite/internal/command"
	"github.com/nikbrunner/bmlite/internal/modal"
	"github.com/nikbrunner/bmlite/internal/search"
	"github.com/nikbrunner/bmlite/internal/validate"
)

// submitCreate validates the add form and creates a bookmark.
// A new bookmark that matches the active query is appended to the visible
// rows without refiltering.
func (a *App) submitCreate() tea.Cmd {
	if bad, ok := a.elements.CheckValidity(SelAddURL, SelAddTitle); !ok {
		return a.reportInvalid(bad, false)
	}

	ins := a.elements.Inputs(SelAddURL, SelAddTitle)
	res, err := a.handler.Create(ins[0].Value(), ins[1].Value())
	if err != nil {
		return a.handleCommandError(err, false)
	}

	a.all = res.Collection
	if search.Matches(a.query, res.Bookmark) {
		visible := a.visible.Clone()
		visible.Append(res.Bookmark)
		a.visible = visible
	}

	ins[0].Reset()
	ins[1].Reset()
	a.elements.ClearErrors(SelAddURL, SelAddTitle)
	a.reportAdd = false

	return tea.Batch(a.setFocus(SelAddURL), a.showFeedback("Bookmark added"))
}

// beginEdit opens the edit panel for the bookmark with targetURL.
// A URL that no longer resolves is a silent no-op.
func (a *App) beginEdit(targetURL string) tea.Cmd {
	s, found, err := a.handler.BeginEdit(targetURL)
	if err != nil {
		a.setMessage(MessageError, "Load failed: "+err.Error())
		return nil
	}
	if !found {
		return nil
	}

	a.edit = s
	a.editing = true
	a.reportEdit = false

	ins := a.elements.Inputs(SelEditURL, SelEditTitle)
	ins[0].SetValue(s.Original.URL)
	ins[1].SetValue(s.Original.Title)
	a.elements.ClearErrors(SelEditURL, SelEditTitle)

	a.openModal(modal.Edit{URL: s.Original.URL, Title: s.Original.Title, Index: s.Index})
	return a.setFocus(SelEditURL)
}

// confirmEdit validates the edit inputs and saves them over the original.
func (a *App) confirmEdit() tea.Cmd {
	if bad, ok := a.elements.CheckValidity(SelEditURL, SelEditTitle); !ok {
		return a.reportInvalid(bad, true)
	}

	ins := a.elements.Inputs(SelEditURL, SelEditTitle)
	res, err := a.handler.ConfirmEdit(a.edit, ins[0].Value(), ins[1].Value())
	if err != nil {
		return a.handleCommandError(err, true)
	}

	a.all = res.Collection
	a.applyFilter()
	a.editing = false
	a.reportEdit = false
	a.modal, _, _ = a.modal.Close()

	return tea.Batch(a.setFocus(SelList), a.showFeedback("Bookmark updated"))
}

// requestDelete opens the delete confirmation for targetURL. It replaces any
// open panel, including the edit panel it may be launched from.
func (a *App) requestDelete(targetURL string) {
	p, found, err := a.handler.RequestDelete(targetURL)
	if err != nil {
		a.setMessage(MessageError, "Load failed: "+err.Error())
		return
	}
	if !found {
		if a.modal.IsOpen() {
			a.modal, _, _ = a.modal.Close()
			a.focus = SelList
		}
		return
	}

	a.pending = p
	a.hasPending = true
	a.openModal(modal.DeleteConfirm{URL: p.URL, Title: p.Title})
}

// confirmDelete removes the pending bookmark and drops its row.
func (a *App) confirmDelete() tea.Cmd {
	if !a.hasPending {
		return a.closeModal()
	}

	res, removed, err := a.handler.ConfirmDelete(a.pending)
	if err != nil {
		return a.handleCommandError(err, false)
	}
	a.clearPending()
	a.editing = false
	a.all = res.Collection

	if removed {
		if i := a.visible.IndexOfID(res.Bookmark.ID); i >= 0 {
			visible := a.visible.Clone()
			_, _ = visible.RemoveAt(i)
			a.visible = visible
		}
		a.clampCursor()
	} else {
		a.applyFilter()
	}

	cmd := a.closeModal()
	if !removed {
		return cmd
	}
	return tea.Batch(cmd, a.showFeedback("Bookmark deleted"))
}

// reportInvalid surfaces a failed validity check. Native errors render next
// to the input; anything else opens a warning that refocuses the input.
func (a *App) reportInvalid(bad Invalid, editing bool) tea.Cmd {
	if bad.Native {
		if editing {
			a.reportEdit = true
		} else {
			a.reportAdd = true
		}
		return a.setFocus(bad.Selector)
	}

	a.openModal(modal.Warning{Message: bad.Err.Error(), Refocus: string(bad.Selector)})
	return nil
}

// handleCommandError routes an error from the command handler.
func (a *App) handleCommandError(err error, editing bool) tea.Cmd {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		a.openModal(modal.Warning{
			Message: verr.Message,
			Refocus: string(fieldSelector(verr.Field, editing)),
		})
		return nil

	case errors.Is(err, command.ErrStaleEdit):
		a.editing = false
		a.modal, _, _ = a.modal.Close()
		a.focus = SelList
		a.setMessage(MessageWarning, "Bookmark changed elsewhere, list reloaded")
		return a.reload()

	default:
		a.logger.Error("command failed", "err", err)
		a.setMessage(MessageError, "Save failed: "+err.Error())
		return nil
	}
}

// reload rereads storage and refilters when the collection changed.
func (a *App) reload() tea.Cmd {
	c, err := a.handler.List()
	if err != nil {
		a.logger.Warn("reload failed", "err", err)
		a.setMessage(MessageError, "Reload failed: "+err.Error())
		return nil
	}
	if c.Equal(a.all) {
		return nil
	}

	a.logger.Debug("storage changed, reloading", "count", len(c))
	a.all = c
	a.applyFilter()
	return nil
}
