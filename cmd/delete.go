package cmd

import (
	"bufio"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"pdfsummarizer/client"
	"pdfsummarizer/types"
)

func (a *app) newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a saved summary",
		Long: `Delete a saved summary. Asks for confirmation unless --yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := types.SummaryID(args[0])
			p := a.printer(cmd)

			if !yes {
				fmt.Fprint(cmd.OutOrStdout(), "Are you sure you want to delete this summary? [y/N] ")
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				switch strings.ToLower(strings.TrimSpace(answer)) {
				case "y", "yes":
				default:
					p.Warning("Delete cancelled")
					return nil
				}
			}

			if err := a.client().DeleteSummary(cmd.Context(), id); err != nil {
				if client.StatusCode(err) == http.StatusNotFound {
					return fmt.Errorf("no saved summary with id %s: %w", id, err)
				}
				return fmt.Errorf("deleting summary %s: %w", id, err)
			}
			p.Success("Summary deleted successfully")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}
