package tui

// UI Text Constants
const (
	TextTitle = "PDF Summarizer"

	// Alerts
	TextSelectFile      = "Please select a PDF file"
	TextOnlyPDF         = "Only PDF files are allowed"
	TextGenerateError   = "Error generating summary: "
	TextNothingToSave   = "No summary to save"
	TextAlreadySaved    = "Summary already saved"
	TextSaved           = "Summary saved successfully!"
	TextSaveError       = "Error saving summary"
	TextDeleted         = "Summary deleted successfully"
	TextDeleteError     = "Error deleting summary: "
	TextOpenError       = "Error loading summary: "
	TextConfirmDelete   = "Are you sure you want to delete this summary?"
	TextConfirmDeleteYN = "(y/n)"

	// Panes
	TextUploadHeading  = "Upload"
	TextResultHeading  = "Summary"
	TextSavedHeading   = "Saved Summaries"
	TextFileLabel      = "PDF file"
	TextLengthLabel    = "Length"
	TextLanguageLabel  = "Target language"
	TextLanguageAuto   = "(same as document)"
	TextGenerate       = "Generate Summary"
	TextBusy           = "Generating summary..."
	TextNoSaved        = "No saved summaries yet"
	TextListError      = "Error loading summaries"
	TextTopicsHeading  = "Topics"
	TextKeywordsHead   = "Keywords"
	TextMetricsHeading = "Quality Metrics"

	// Footer
	TextFooterForm   = "tab: next pane | up/down: field | left/right: length | enter: generate | ctrl+s: save | ctrl+c: quit"
	TextFooterResult = "tab: next pane | up/down: scroll | s: save | esc: dismiss | q: quit"
	TextFooterList   = "tab: next pane | up/down: select | enter: open | d: delete | r: refresh | q: quit"
)
