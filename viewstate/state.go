// Package viewstate holds what the summary view is currently showing and
// derives the save control from it.
//
// State is a value: every transition returns a new State and the caller
// keeps whichever one it wants. The displayed result is always replaced
// wholesale, never merged.
package viewstate

import (
	"errors"

	"pdfsummarizer/types"
)

// Save control labels
const (
	LabelSave  = "Save Summary"
	LabelSaved = "Already Saved"
)

var (
	// ErrNothingToSave is returned when save is requested with no result shown
	ErrNothingToSave = errors.New("no summary to save")
	// ErrAlreadySaved is returned when the shown result is already persisted
	ErrAlreadySaved = errors.New("summary already saved")
)

// SaveControl is the rendered state of the save button
type SaveControl struct {
	Label   string
	Enabled bool
}

// State is the controller's view state. The invariant is that CurrentID is
// set if and only if the displayed result has been persisted.
type State struct {
	current   *types.SummaryResult
	currentID types.SummaryID
	fileName  string
}

// New returns an empty state
func New() State {
	return State{}
}

// Current returns the displayed result, or nil
func (s State) Current() *types.SummaryResult {
	return s.current
}

// CurrentID returns the persisted id of the displayed result, if any
func (s State) CurrentID() types.SummaryID {
	return s.currentID
}

// HasResult reports whether anything is displayed
func (s State) HasResult() bool {
	return s.current != nil
}

// FileName returns the last selected file name, used as the save title
func (s State) FileName() string {
	return s.fileName
}

// SelectFile records the chosen file name without touching the result
func (s State) SelectFile(name string) State {
	s.fileName = name
	return s
}

// Generated replaces the displayed result with a freshly summarized one
func (s State) Generated(r types.SummaryResult) State {
	s.current = &r
	s.currentID = r.SummaryID
	return s
}

// Opened replaces the displayed result with a saved record fetched by id
func (s State) Opened(id types.SummaryID, r types.SummaryResult) State {
	if r.SummaryID.IsZero() {
		r.SummaryID = id
	}
	r.Saved = true
	s.current = &r
	s.currentID = r.SummaryID
	return s
}

// CheckSave reports why the displayed result cannot be saved, or nil
func (s State) CheckSave() error {
	if s.current == nil {
		return ErrNothingToSave
	}
	if !s.currentID.IsZero() || s.current.Saved {
		return ErrAlreadySaved
	}
	return nil
}

// SaveRequest builds the save payload for the displayed result
func (s State) SaveRequest() (types.SaveRequest, error) {
	if err := s.CheckSave(); err != nil {
		return types.SaveRequest{}, err
	}
	title := s.fileName
	if title == "" {
		title = s.current.Title
	}
	return types.NewSaveRequest(title, s.current), nil
}

// Saved records that the displayed result was persisted under id
func (s State) Saved(id types.SummaryID) State {
	if s.current == nil || id.IsZero() {
		return s
	}
	r := *s.current
	r.SummaryID = id
	r.Saved = true
	s.current = &r
	s.currentID = id
	return s
}

// Forget clears the persisted id when the displayed record was deleted on
// the server, making it saveable again
func (s State) Forget(id types.SummaryID) State {
	if s.current == nil || s.currentID != id {
		return s
	}
	r := *s.current
	r.SummaryID = ""
	r.Saved = false
	s.current = &r
	s.currentID = ""
	return s
}

// SaveControl derives the save button from the state
func (s State) SaveControl() SaveControl {
	switch s.CheckSave() {
	case nil:
		return SaveControl{Label: LabelSave, Enabled: true}
	case ErrAlreadySaved:
		return SaveControl{Label: LabelSaved, Enabled: false}
	default:
		return SaveControl{Label: LabelSave, Enabled: false}
	}
}
