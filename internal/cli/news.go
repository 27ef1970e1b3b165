package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newNewsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Unread news alerts from the journal server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.client()
			if err != nil {
				return err
			}
			alerts, err := client.Unread(context.Background())
			if err != nil {
				fail("fetch unread: " + err.Error())
				return err
			}
			if len(alerts) == 0 {
				fmt.Println(mutedStyle.Render("no unread news"))
				return nil
			}
			var lines []string
			lines = append(lines, titleStyle.Render(fmt.Sprintf("Unread news (%d)", len(alerts))))
			for _, a := range alerts {
				impact := a.Impact
				if impact == "" {
					impact = "-"
				}
				row := fmt.Sprintf("%4d  [%s] %s", a.ID, impact, a.Title)
				if a.Symbol != "" {
					row += mutedStyle.Render(" " + a.Symbol)
				}
				lines = append(lines, row)
			}
			panel(lines)
			return nil
		},
	}
	cmd.AddCommand(newNewsReadCmd(app))
	return cmd
}

func newNewsReadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "read <news-id>",
		Short: "Mark one alert as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fail("read: not a number: " + args[0])
				return err
			}
			client, err := app.client()
			if err != nil {
				return err
			}
			if err := client.MarkRead(context.Background(), id); err != nil {
				fail("mark read: " + err.Error())
				return err
			}
			ok("marked read")
			return nil
		},
	}
}
