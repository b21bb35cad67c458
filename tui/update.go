package tui

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"pdfsummarizer/client"
	"pdfsummarizer/viewstate"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil
	case spinner.TickMsg:
		if !m.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case SummarizeResultMsg:
		return m.handleSummarizeResult(msg)
	case SavedListMsg:
		return m.handleSavedList(msg)
	case OpenResultMsg:
		return m.handleOpenResult(msg)
	case SaveResultMsg:
		return m.handleSaveResult(msg)
	case DeleteResultMsg:
		return m.handleDeleteResult(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// A pending delete confirmation swallows every other key
	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "tab":
		m.focus = panes[(int(m.focus)+1)%len(panes)]
		return m, nil
	case "shift+tab":
		m.focus = panes[(int(m.focus)+len(panes)-1)%len(panes)]
		return m, nil
	case "esc":
		m.alert = nil
		return m, nil
	case "ctrl+s":
		return m.save()
	}

	switch m.focus {
	case PaneForm:
		return m.handleFormKey(msg)
	case PaneResult:
		return m.handleResultKey(msg)
	case PaneList:
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit()
	case "up":
		if m.field > FieldFile {
			m = m.focusField(m.field - 1)
		}
		return m, nil
	case "down":
		if m.field < FieldLanguage {
			m = m.focusField(m.field + 1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.field {
	case FieldLength:
		switch msg.String() {
		case "left", "h":
			m.length = nextLength(m.length, -1)
		case "right", "l", " ":
			m.length = nextLength(m.length, 1)
		}
	case FieldFile:
		m.fileInput, cmd = m.fileInput.Update(msg)
	case FieldLanguage:
		m.langInput, cmd = m.langInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "s":
		return m.save()
	case "home", "g":
		m.viewport.GotoTop()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleListKey processes keys on the saved list. Open and delete are
// distinct keys and never fall through into each other.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "s":
		return m.save()
	case "r":
		return m, loadSummaries(m.client)
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.summaries)-1 {
			m.selected++
		}
	case "enter", "o":
		if item, ok := m.selectedListing(); ok {
			return m, openSummary(m.client, item.ID)
		}
	case "d", "delete":
		if item, ok := m.selectedListing(); ok {
			m.confirm = &item
		}
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.confirm.ID
		m.confirm = nil
		return m, deleteSummary(m.client, id)
	case "n", "N", "esc":
		m.confirm = nil
	}
	return m, nil
}

// submit validates the form and starts an upload. Validation failures are
// alerted and nothing is sent.
func (m Model) submit() (tea.Model, tea.Cmd) {
	req := client.SummarizeRequest{
		FilePath:       trimmedPath(m.fileInput.Value()),
		Length:         m.length,
		TargetLanguage: strings.TrimSpace(m.langInput.Value()),
	}
	if err := req.Validate(); err != nil {
		return m.withError(validationText(err)), nil
	}

	m.state = m.state.SelectFile(filepath.Base(req.FilePath))
	m.pending++
	m.alert = nil
	if m.pending > 1 {
		return m, summarize(m.client, req)
	}
	return m, tea.Batch(summarize(m.client, req), m.spinner.Tick)
}

// save starts persisting the displayed result
func (m Model) save() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	req, err := m.state.SaveRequest()
	switch {
	case errors.Is(err, viewstate.ErrNothingToSave):
		return m.withAlert(TextNothingToSave), nil
	case errors.Is(err, viewstate.ErrAlreadySaved):
		return m.withAlert(TextAlreadySaved), nil
	}

	m.saving = true
	return m, saveSummary(m.client, m.state.Current(), req)
}

// handleSummarizeResult replaces the displayed result, or alerts and keeps
// the prior one
func (m Model) handleSummarizeResult(msg SummarizeResultMsg) (tea.Model, tea.Cmd) {
	if m.pending > 0 {
		m.pending--
	}
	if client.IsValidation(msg.Err) {
		return m.withError(validationText(msg.Err)), nil
	}
	if msg.Err != nil {
		return m.withError(TextGenerateError + errorText(msg.Err)), nil
	}

	m.state = m.state.Generated(*msg.Result)
	return m.showResult(), nil
}

func (m Model) handleSavedList(msg SavedListMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.summaries = nil
		m.listErr = true
		m.selected = 0
		return m, nil
	}

	m.summaries = msg.Summaries
	m.listErr = false
	if m.selected >= len(m.summaries) {
		m.selected = len(m.summaries) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return m, nil
}

func (m Model) handleOpenResult(msg OpenResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m.withError(TextOpenError + errorText(msg.Err)), nil
	}

	m.state = m.state.Opened(msg.ID, *msg.Result)
	return m.showResult(), nil
}

// handleSaveResult records the new id. A result replaced while the save was
// in flight is left alone; the list is refreshed either way.
func (m Model) handleSaveResult(msg SaveResultMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	if msg.Err != nil {
		if errors.Is(msg.Err, client.ErrNoSummaryID) {
			return m.withError(TextSaveError), nil
		}
		return m.withError(TextSaveError + ": " + errorText(msg.Err)), nil
	}

	if m.state.Current() == msg.For {
		m.state = m.state.Saved(msg.ID)
		m = m.refreshResult()
	}
	m = m.withAlert(TextSaved)
	return m, loadSummaries(m.client)
}

func (m Model) handleDeleteResult(msg DeleteResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m.withError(TextDeleteError + errorText(msg.Err)), nil
	}

	m.state = m.state.Forget(msg.ID)
	m = m.refreshResult().withAlert(TextDeleted)
	return m, loadSummaries(m.client)
}

// showResult reveals the result pane scrolled to the top
func (m Model) showResult() Model {
	m = m.refreshResult()
	m.focus = PaneResult
	m.viewport.GotoTop()
	return m
}

// validationText is the alert for a form that failed validation, either on
// submit or when the file became unreadable before the upload
func validationText(err error) string {
	if errors.Is(err, client.ErrNotPDF) {
		return TextOnlyPDF
	}
	return TextSelectFile
}

// errorText prefers the backend's message over the wrapped error chain
func errorText(err error) string {
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	return err.Error()
}
