package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"pdfsummarizer/client"
	"pdfsummarizer/config"
	"pdfsummarizer/output"
	"pdfsummarizer/render"
	"pdfsummarizer/viewstate"
)

func (a *app) newSummarizeCmd() *cobra.Command {
	var (
		length         string
		targetLanguage string
		save           bool
		jsonOutput     bool
	)

	cmd := &cobra.Command{
		Use:   "summarize FILE",
		Short: "Summarize a PDF document",
		Long: `Upload a PDF document and print its summary.

The result is not saved unless --save is given.

Examples:
  pdfsummarizer summarize paper.pdf
  pdfsummarizer summarize paper.pdf --length long --target-language es
  pdfsummarizer summarize paper.pdf --save --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("length") {
				length = a.cfg.Summary.Length
			}
			if !cmd.Flags().Changed("target-language") {
				targetLanguage = a.cfg.Summary.TargetLanguage
			}
			if !config.IsValidLength(length) {
				return fmt.Errorf("invalid length %q (must be short, medium, or long)", length)
			}

			c := a.client()
			res, err := c.Summarize(cmd.Context(), client.SummarizeRequest{
				FilePath:       args[0],
				Length:         length,
				TargetLanguage: targetLanguage,
			})
			if err != nil {
				return fmt.Errorf("generating summary: %w", err)
			}

			state := viewstate.New().SelectFile(filepath.Base(args[0])).Generated(*res)
			p := a.printer(cmd)
			if jsonOutput {
				p = output.NewPrinter(cmd.ErrOrStderr(), cmd.ErrOrStderr(), false)
			}

			if save {
				state, err = saveShown(cmd, c, state, p)
				if err != nil {
					return err
				}
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), state.Current())
			}

			p.Header(state.FileName())
			fmt.Fprint(p.Out(), render.Text(state.Current(), render.DefaultOptions()))
			if control := state.SaveControl(); control.Enabled {
				p.Print("\n%s", p.Dim("Run again with --save to keep this summary."))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&length, "length", "l", config.DefaultLength, "summary length: short, medium or long")
	cmd.Flags().StringVarP(&targetLanguage, "target-language", "t", "", "translate the summary to this language code")
	cmd.Flags().BoolVar(&save, "save", false, "save the summary after generating it")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

// saveShown persists the displayed result following the same rules as the
// interactive save control
func saveShown(cmd *cobra.Command, c *client.Client, state viewstate.State, p *output.Printer) (viewstate.State, error) {
	req, err := state.SaveRequest()
	if errors.Is(err, viewstate.ErrAlreadySaved) {
		p.Info("Summary already saved")
		return state, nil
	}
	if err != nil {
		return state, err
	}

	id, err := c.SaveSummary(cmd.Context(), req)
	if err != nil {
		return state, fmt.Errorf("saving summary: %w", err)
	}

	p.Success("Summary saved successfully! (id %s)", id)
	return state.Saved(id), nil
}
