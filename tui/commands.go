package tui

import (
	"context"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"pdfsummarizer/client"
	"pdfsummarizer/types"
)

// summarize creates a command that uploads the form's file
func summarize(c *client.Client, req client.SummarizeRequest) tea.Cmd {
	return func() tea.Msg {
		res, err := c.Summarize(context.Background(), req)
		return SummarizeResultMsg{
			FileName: filepath.Base(req.FilePath),
			Result:   res,
			Err:      err,
		}
	}
}

// loadSummaries creates a command that fetches the saved list
func loadSummaries(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		list, err := c.ListSummaries(context.Background())
		return SavedListMsg{Summaries: list, Err: err}
	}
}

// openSummary creates a command that fetches one saved record
func openSummary(c *client.Client, id types.SummaryID) tea.Cmd {
	return func() tea.Msg {
		res, err := c.GetSummary(context.Background(), id)
		return OpenResultMsg{ID: id, Result: res, Err: err}
	}
}

// saveSummary creates a command that persists the displayed result
func saveSummary(c *client.Client, shown *types.SummaryResult, req types.SaveRequest) tea.Cmd {
	return func() tea.Msg {
		id, err := c.SaveSummary(context.Background(), req)
		return SaveResultMsg{For: shown, ID: id, Err: err}
	}
}

// deleteSummary creates a command that removes a saved record
func deleteSummary(c *client.Client, id types.SummaryID) tea.Cmd {
	return func() tea.Msg {
		return DeleteResultMsg{ID: id, Err: c.DeleteSummary(context.Background(), id)}
	}
}
