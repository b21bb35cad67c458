package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pdfsummarizer/tui"
)

func (a *app) newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive interface",
		Long: `Start the interactive interface. Choose a PDF, pick a summary length and
an optional target language, then browse, save, open and delete summaries.

Logs are discarded unless --log-file is given, since the interface owns the terminal.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationTUI: "true"},
		RunE:        a.runTUI,
	}
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	m := tui.NewModel(a.client(), tui.Options{
		Length:         a.cfg.Summary.Length,
		TargetLanguage: a.cfg.Summary.TargetLanguage,
	})

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := p.Run()
	return err
}
