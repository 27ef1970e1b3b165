package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pretrade/internal/store"
)

func newAuthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "API token for the journal server",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "login",
		Short: "Save an API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := app.dir()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), "Paste your API token: ")
			var token string
			if _, err := fmt.Fscanln(cmd.InOrStdin(), &token); err != nil {
				fail("read token: " + err.Error())
				return err
			}
			if err := store.SetToken(dir, token); err != nil {
				fail("save token: " + err.Error())
				return err
			}
			ok("logged in")
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Delete the saved token",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := app.dir()
			if err != nil {
				return err
			}
			ti, _ := store.GetToken(dir)
			if ti != nil && ti.Source == "env" {
				ok("token is provided by PRETRADE_TOKEN (nothing to delete)")
				return nil
			}
			if err := store.DeleteToken(dir); err != nil {
				fail("logout: " + err.Error())
				return err
			}
			ok("logged out")
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show where the token comes from",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := app.dir()
			if err != nil {
				return err
			}
			ti, err := store.GetToken(dir)
			if err != nil {
				return err
			}
			if ti == nil {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("not logged in"))
				fmt.Fprintln(cmd.OutOrStdout(), "Run: pretrade auth login")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "source: %s\n", ti.Source)
			if !ti.CreatedAt.IsZero() {
				fmt.Fprintf(cmd.OutOrStdout(), "saved: %s\n", ti.CreatedAt.UTC().Format(time.RFC3339))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "env override: PRETRADE_TOKEN")
			return nil
		},
	})
	return cmd
}
