package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"pdfsummarizer/client"
	"pdfsummarizer/render"
	"pdfsummarizer/types"
	"pdfsummarizer/viewstate"
)

func (a *app) newShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "show ID",
		Aliases: []string{"open"},
		Short:   "Show a saved summary",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := types.SummaryID(args[0])
			res, err := a.client().GetSummary(cmd.Context(), id)
			if client.StatusCode(err) == http.StatusNotFound {
				return fmt.Errorf("no saved summary with id %s: %w", id, err)
			}
			if err != nil {
				return fmt.Errorf("loading summary %s: %w", id, err)
			}
			state := viewstate.New().Opened(id, *res)

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), state.Current())
			}

			p := a.printer(cmd)
			title := state.Current().Title
			if title == "" {
				title = "Summary " + id.String()
			}
			p.Header(title)
			fmt.Fprint(p.Out(), render.Text(state.Current(), render.DefaultOptions()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}
