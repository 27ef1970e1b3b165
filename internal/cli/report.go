package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Ask the server to generate the weekly report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				proceed, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Generate weekly report?")
				if err != nil {
					return err
				}
				if !proceed {
					// Declined: no request goes out.
					fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("aborted"))
					return nil
				}
			}
			client, err := app.client()
			if err != nil {
				return err
			}
			if err := client.GenerateReport(context.Background()); err != nil {
				fail("generate report: " + err.Error())
				return err
			}
			ok("weekly report generated")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// confirm prompts and reads a single line; anything but y/yes declines.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
