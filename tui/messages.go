package tui

import "pdfsummarizer/types"

// Messages for the tea program. Every network action delivers exactly one.

// SummarizeResultMsg is sent when an upload completes
type SummarizeResultMsg struct {
	FileName string
	Result   *types.SummaryResult
	Err      error
}

// SavedListMsg is sent when the saved summaries list is fetched
type SavedListMsg struct {
	Summaries []types.SummaryListing
	Err       error
}

// OpenResultMsg is sent when a saved record is fetched
type OpenResultMsg struct {
	ID     types.SummaryID
	Result *types.SummaryResult
	Err    error
}

// SaveResultMsg is sent when a save completes. For is the result that was
// displayed when the save was issued.
type SaveResultMsg struct {
	For *types.SummaryResult
	ID  types.SummaryID
	Err error
}

// DeleteResultMsg is sent when a delete completes
type DeleteResultMsg struct {
	ID  types.SummaryID
	Err error
}
