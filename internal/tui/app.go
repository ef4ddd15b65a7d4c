package tui

import (
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/skratchdot/open-golang/open"

	"github.com/nikbrunner/bmlite/internal/command"
	"github.com/nikbrunner/bmlite/internal/modal"
	"github.com/nikbrunner/bmlite/internal/model"
	"github.com/nikbrunner/bmlite/internal/render"
	"github.com/nikbrunner/bmlite/internal/search"
	"github.com/nikbrunner/bmlite/internal/tui/layout"
)

// DefaultFeedbackDuration is used when AppParams leaves it unset.
const DefaultFeedbackDuration = 1500 * time.Millisecond

// App is the main bubbletea model for the bookmark manager.
type App struct {
	handler      *command.Handler
	elements     *Elements
	changes      <-chan struct{}
	logger       *log.Logger
	keys         KeyMap
	styles       render.Styles
	layoutConfig layout.LayoutConfig
	feedbackFor  time.Duration
	opener       func(string) error
	copier       func(string) error

	all     model.Collection // everything in storage
	visible model.Collection // all, filtered by query
	query   string
	cursor  int
	focus   Selector

	// For gg command
	lastKeyWasG bool

	modal      modal.Controller
	edit       command.EditSession
	editing    bool
	pending    command.PendingDelete
	hasPending bool

	// Inline validation errors are only shown after a failed submit.
	reportAdd  bool
	reportEdit bool

	feedback Feedback
	status   statusMessage

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Handler   *command.Handler
	Bookmarks model.Collection // initial contents, usually Handler.List()

	// Changes signals that storage was modified by another process.
	// nil disables reloading.
	Changes <-chan struct{}

	Logger           *log.Logger
	Keys             *KeyMap              // optional, uses default if nil
	Styles           *render.Styles       // optional, uses default if nil
	Layout           *layout.LayoutConfig // optional, uses default if nil
	FeedbackDuration time.Duration        // optional, defaults to DefaultFeedbackDuration
	NativeValidation bool                 // inputs validate themselves

	// Opener and Copier default to the system browser and clipboard.
	Opener func(url string) error
	Copier func(text string) error
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := render.DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutConfig := layout.DefaultConfig()
	if params.Layout != nil {
		layoutConfig = *params.Layout
	}

	logger := params.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	app := App{
		handler:      params.Handler,
		changes:      params.Changes,
		logger:       logger,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutConfig,
		feedbackFor:  params.FeedbackDuration,
		opener:       params.Opener,
		copier:       params.Copier,
		elements: NewElements(ElementsParams{
			Input:            layoutConfig.Input,
			NativeValidation: params.NativeValidation,
		}),
		all:    params.Bookmarks,
		focus:  SelList,
		width:  80,
		height: 24,
	}
	if app.feedbackFor <= 0 {
		app.feedbackFor = DefaultFeedbackDuration
	}
	if app.opener == nil {
		app.opener = open.Run
	}
	if app.copier == nil {
		app.copier = clipboard.WriteAll
	}
	if app.all == nil {
		app.all = model.Collection{}
	}

	app.applyFilter()
	return app
}

// storageChangedMsg is sent when the backing store changed on disk.
type storageChangedMsg struct{}

// actionDoneMsg reports the outcome of a side effect (open, yank).
type actionDoneMsg struct {
	text string
	err  error
}

// Cursor returns the current cursor position in the visible list.
func (a App) Cursor() int {
	return a.cursor
}

// Focus returns the focused element.
func (a App) Focus() Selector {
	return a.focus
}

// Query returns the active search query.
func (a App) Query() string {
	return a.query
}

// Visible returns the rows currently listed.
func (a App) Visible() model.Collection {
	return a.visible
}

// All returns the whole collection as last read from storage.
func (a App) All() model.Collection {
	return a.all
}

// Modal returns the modal controller.
func (a App) Modal() modal.Controller {
	return a.modal
}

// Feedback returns the transient feedback state.
func (a App) Feedback() Feedback {
	return a.feedback
}

// Message returns the status line message.
func (a App) Message() (string, MessageType) {
	return a.status.text, a.status.kind
}

// Elements returns the element cache.
func (a App) Elements() *Elements {
	return a.elements
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.waitForChange()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case feedbackExpiredMsg:
		a.feedback = a.feedback.Expire(msg.gen)
		return a, nil

	case actionDoneMsg:
		if msg.err != nil {
			a.setMessage(MessageError, msg.err.Error())
			return a, nil
		}
		return a, a.showFeedback(msg.text)

	case storageChangedMsg:
		cmd := a.reload()
		return a, tea.Batch(cmd, a.waitForChange())

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		if a.modal.IsOpen() {
			return a.handleModalKey(msg)
		}
		if a.focus != SelList {
			return a.handleInputKey(msg)
		}
		return a.handleListKey(msg)
	}

	// Anything else (cursor blink) goes to the focused input.
	if in := a.elements.Input(a.focus); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleListKey handles keys while the bookmark list has focus.
func (a App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}

	// Reset g flag for any other key
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if len(a.visible) > 0 && a.cursor < len(a.visible)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Bottom):
		if len(a.visible) > 0 {
			a.cursor = len(a.visible) - 1
		}

	case key.Matches(msg, a.keys.Search):
		return a, a.setFocus(SelSearch)

	case key.Matches(msg, a.keys.ClearSearch):
		a.clearSearch()

	case key.Matches(msg, a.keys.Add):
		return a, a.setFocus(SelAddURL)

	case key.Matches(msg, a.keys.NextField):
		return a, a.setFocus(cycle(addFields, a.focus, false))

	case key.Matches(msg, a.keys.PrevField):
		return a, a.setFocus(cycle(addFields, a.focus, true))

	case key.Matches(msg, a.keys.Edit):
		if b, ok := a.selected(); ok {
			return a, a.beginEdit(b.URL)
		}

	case key.Matches(msg, a.keys.Delete):
		if b, ok := a.selected(); ok {
			a.requestDelete(b.URL)
		}

	case key.Matches(msg, a.keys.Open):
		return a, a.openSelected()

	case key.Matches(msg, a.keys.YankURL):
		return a, a.yankSelected()
	}

	return a, nil
}

// handleInputKey handles keys while the search or add form has focus.
func (a App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return a, tea.Quit

	case key.Matches(msg, a.keys.Cancel):
		if a.focus == SelSearch {
			a.clearSearch()
		} else {
			a.reportAdd = false
			a.elements.ClearErrors(SelAddURL, SelAddTitle)
		}
		return a, a.setFocus(SelList)

	case key.Matches(msg, a.keys.NextField):
		return a, a.setFocus(cycle(addFields, a.focus, false))

	case key.Matches(msg, a.keys.PrevField):
		return a, a.setFocus(cycle(addFields, a.focus, true))

	case key.Matches(msg, a.keys.ClearSearch):
		a.clearSearch()
		return a, nil

	case key.Matches(msg, a.keys.Submit):
		if a.focus == SelSearch {
			return a, a.setFocus(SelList)
		}
		return a, a.submitCreate()
	}

	in := a.elements.Input(a.focus)
	if in == nil {
		return a, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)

	if a.focus == SelSearch && in.Value() != a.query {
		a.query = in.Value()
		a.applyFilter()
	}
	return a, cmd
}

// handleModalKey handles keys while a modal is open. Nothing underneath is interactive.
func (a App) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	switch a.modal.Active() {
	case modal.KindWarning:
		if key.Matches(msg, a.keys.Cancel) || key.Matches(msg, a.keys.Submit) {
			return a, a.closeModal()
		}

	case modal.KindDeleteConfirm:
		switch {
		case key.Matches(msg, a.keys.Confirm):
			return a, a.confirmDelete()
		case key.Matches(msg, a.keys.Deny):
			a.clearPending()
			return a, a.closeModal()
		}

	case modal.KindEdit:
		switch {
		case key.Matches(msg, a.keys.Cancel):
			a.editing = false
			return a, a.closeModal()
		case key.Matches(msg, a.keys.NextField):
			return a, a.setFocus(cycle(editFields, a.focus, false))
		case key.Matches(msg, a.keys.PrevField):
			return a, a.setFocus(cycle(editFields, a.focus, true))
		case key.Matches(msg, a.keys.Submit):
			return a, a.confirmEdit()
		case key.Matches(msg, a.keys.EditDelete):
			url := a.edit.Original.URL
			a.editing = false
			a.requestDelete(url)
			return a, nil
		}

		in := a.elements.Input(a.focus)
		if in == nil {
			return a, nil
		}
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		ins := a.elements.Inputs(SelEditURL, SelEditTitle)
		a.modal = a.modal.WithEdit(ins[0].Value(), ins[1].Value())
		return a, cmd
	}

	return a, nil
}

// handleMouse closes the modal on a click outside its box.
func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.modal.IsOpen() || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}

	x, y, w, h := a.modalRect()
	if layout.Contains(x, y, w, h, msg.X, msg.Y) {
		return a, nil
	}

	switch a.modal.Active() {
	case modal.KindEdit:
		a.editing = false
	case modal.KindDeleteConfirm:
		a.clearPending()
	}
	return a, a.closeModal()
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

func (a App) waitForChange() tea.Cmd {
	if a.changes == nil {
		return nil
	}
	changes := a.changes
	return func() tea.Msg {
		<-changes
		return storageChangedMsg{}
	}
}

// selected returns the bookmark under the cursor.
func (a App) selected() (model.Bookmark, bool) {
	if a.cursor < 0 || a.cursor >= len(a.visible) {
		return model.Bookmark{}, false
	}
	return a.visible[a.cursor], true
}

// setFocus moves focus to sel, blurring the previously focused input.
func (a *App) setFocus(sel Selector) tea.Cmd {
	if prev := a.elements.Input(a.focus); prev != nil && a.focus != sel {
		prev.Blur()
	}
	a.focus = sel
	if in := a.elements.Input(sel); in != nil {
		return in.Focus()
	}
	return nil
}

// applyFilter recomputes the visible rows from the full collection.
func (a *App) applyFilter() {
	a.visible = search.Filter(a.query, a.all)
	a.clampCursor()
}

func (a *App) clampCursor() {
	if a.cursor >= len(a.visible) {
		a.cursor = len(a.visible) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) clearSearch() {
	a.elements.Input(SelSearch).Reset()
	a.query = ""
	a.applyFilter()
}

func (a *App) clearPending() {
	a.pending = command.PendingDelete{}
	a.hasPending = false
}

func (a *App) setMessage(kind MessageType, text string) {
	a.status = statusMessage{text: text, kind: kind}
}

// showFeedback shows transient success text and replaces any status message.
func (a *App) showFeedback(text string) tea.Cmd {
	a.status = statusMessage{}
	var cmd tea.Cmd
	a.feedback, cmd = a.feedback.Show(text, a.feedbackFor)
	return cmd
}

// closeModal closes whatever is open and restores focus. A warning raised
// while editing returns to the edit panel with the values kept in the inputs.
func (a *App) closeModal() tea.Cmd {
	var (
		target string
		ok     bool
	)
	a.modal, target, ok = a.modal.Close()
	if !ok {
		return a.setFocus(SelList)
	}

	sel := Selector(target)
	if (sel == SelEditURL || sel == SelEditTitle) && a.editing {
		ins := a.elements.Inputs(SelEditURL, SelEditTitle)
		a.modal = a.modal.Open(modal.Edit{URL: ins[0].Value(), Title: ins[1].Value(), Index: a.edit.Index})
	}
	return a.setFocus(sel)
}

// openModal opens s and takes focus away from the inputs underneath.
func (a *App) openModal(s modal.State) {
	if in := a.elements.Input(a.focus); in != nil {
		in.Blur()
	}
	a.modal = a.modal.Open(s)
}

func (a App) openSelected() tea.Cmd {
	b, ok := a.selected()
	if !ok {
		return nil
	}
	opener := a.opener
	logger := a.logger
	return func() tea.Msg {
		if err := opener(b.URL); err != nil {
			logger.Warn("open failed", "url", b.URL, "err", err)
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{text: "Opened " + b.Title}
	}
}

func (a App) yankSelected() tea.Cmd {
	b, ok := a.selected()
	if !ok {
		return nil
	}
	copier := a.copier
	return func() tea.Msg {
		if err := copier(b.URL); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{text: "Copied " + b.URL}
	}
}
