package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pdfsummarizer/output"
)

func (a *app) newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved summaries",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.client().ListSummaries(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading summaries: %w", err)
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), list)
			}

			p := a.printer(cmd)
			if len(list) == 0 {
				p.Info("No saved summaries yet")
				return nil
			}

			p.Header("Saved Summaries")
			table := output.NewTable(cmd.OutOrStdout(), []string{"ID", "TITLE", "READING TIME"})
			for _, s := range list {
				table.AddRow([]string{
					s.ID.String(),
					p.Bold(s.Title),
					fmt.Sprintf("%d min", s.ReadingTime),
				})
			}
			if err := table.Render(); err != nil {
				return err
			}
			p.Print("%s", p.Dim(fmt.Sprintf("%d saved", table.Len())))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}
