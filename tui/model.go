// Package tui is the interactive summary view controller.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"pdfsummarizer/client"
	"pdfsummarizer/config"
	"pdfsummarizer/render"
	"pdfsummarizer/types"
	"pdfsummarizer/viewstate"
)

// Pane identifies which part of the screen receives key presses
type Pane int

const (
	PaneForm Pane = iota
	PaneResult
	PaneList
)

var panes = []Pane{PaneForm, PaneResult, PaneList}

// Field identifies an input on the upload form
type Field int

const (
	FieldFile Field = iota
	FieldLength
	FieldLanguage
)

// alert is the dismissable banner shown above the panes
type alert struct {
	text    string
	isError bool
}

// Options configure a new Model
type Options struct {
	Length         string
	TargetLanguage string
	Render         render.Options
}

// Model represents the TUI client state (thin client)
type Model struct {
	client *client.Client
	render render.Options

	// What the result pane shows
	state viewstate.State

	// Upload form
	fileInput textinput.Model
	langInput textinput.Model
	length    string
	field     Field
	pending   int
	spinner   spinner.Model

	// Saved summaries pane
	summaries []types.SummaryListing
	listErr   bool
	selected  int
	confirm   *types.SummaryListing
	saving    bool

	focus    Pane
	viewport viewport.Model
	alert    *alert

	width  int
	height int
}

// NewModel creates a new TUI model
func NewModel(c *client.Client, opts Options) Model {
	if !config.IsValidLength(opts.Length) {
		opts.Length = config.DefaultLength
	}
	if opts.Render == (render.Options{}) {
		opts.Render = render.DefaultOptions()
	}

	fileInput := newInput("path/to/document.pdf", 0)
	fileInput.Focus()

	langInput := newInput("e.g. es", 8)
	langInput.SetValue(opts.TargetLanguage)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = StatusStyle

	return Model{
		client:    c,
		render:    opts.Render,
		state:     viewstate.New(),
		fileInput: fileInput,
		langInput: langInput,
		length:    opts.Length,
		spinner:   spin,
		focus:     PaneForm,
		viewport:  viewport.New(80, defaultResultHeight),
	}
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 50
	in.Cursor.SetMode(cursor.CursorStatic)
	return in
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return loadSummaries(m.client)
}

// State returns the current view state
func (m Model) State() viewstate.State {
	return m.state
}

// Busy reports whether an upload is in flight
func (m Model) Busy() bool {
	return m.pending > 0
}

// Alert returns the banner text, if any
func (m Model) Alert() string {
	if m.alert == nil {
		return ""
	}
	return m.alert.text
}

func (m Model) withAlert(text string) Model {
	m.alert = &alert{text: text}
	return m
}

func (m Model) withError(text string) Model {
	m.alert = &alert{text: text, isError: true}
	return m
}

// nextLength cycles through the length options
func nextLength(current string, step int) string {
	for i, l := range config.Lengths {
		if l == current {
			n := len(config.Lengths)
			return config.Lengths[((i+step)%n+n)%n]
		}
	}
	return config.DefaultLength
}

const defaultResultHeight = 20

// resize fits the result viewport to the terminal
func (m Model) resize(width, height int) Model {
	m.width, m.height = width, height
	m.viewport.Width = max(20, width-6)
	m.viewport.Height = max(5, height-18)
	m.fileInput.Width = max(20, width-30)
	return m.refreshResult()
}

// refreshResult re-renders the displayed result into the viewport
func (m Model) refreshResult() Model {
	if !m.state.HasResult() {
		m.viewport.SetContent("")
		return m
	}
	m.viewport.SetContent(resultLines(m.state.Current(), m.render, m.viewport.Width))
	return m
}

// focusField moves keyboard input to field f of the upload form
func (m Model) focusField(f Field) Model {
	m.field = f
	m.fileInput.Blur()
	m.langInput.Blur()
	switch f {
	case FieldFile:
		m.fileInput.Focus()
	case FieldLanguage:
		m.langInput.Focus()
	}
	return m
}

func (m Model) selectedListing() (types.SummaryListing, bool) {
	if m.selected < 0 || m.selected >= len(m.summaries) {
		return types.SummaryListing{}, false
	}
	return m.summaries[m.selected], true
}

func trimmedPath(p string) string {
	return strings.Trim(strings.TrimSpace(p), `"'`)
}
