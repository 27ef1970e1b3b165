// Package cli wires the cobra command tree. Running with no subcommand
// starts the interactive TUI.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"pretrade/internal/checklist"
	"pretrade/internal/model"
	"pretrade/internal/news"
	"pretrade/internal/store"
	"pretrade/internal/tui"
)

type App struct {
	DataDir string
	API     string
	Store   string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "pretrade",
		Short:        "Pre-trade checklists and news for the trading journal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.DataDir, "data-dir", envOr("PRETRADE_DIR", ""), "Path to the data dir (default: ~/.pretrade)")
	cmd.PersistentFlags().StringVar(&app.API, "api", envOr("PRETRADE_API", ""), "Journal server base URL (overrides config)")
	cmd.PersistentFlags().StringVar(&app.Store, "store", "", "State backend: json|sqlite (overrides config)")

	cmd.AddCommand(newChecklistCmd(app))
	cmd.AddCommand(newNewsCmd(app))
	cmd.AddCommand(newReportCmd(app))
	cmd.AddCommand(newAuthCmd(app))

	return cmd
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (a *App) dir() (string, error) {
	if a.DataDir != "" {
		return a.DataDir, nil
	}
	return store.DefaultDataDir()
}

// config loads config.json and applies flag/env overrides.
func (a *App) config(dir string) (store.Config, error) {
	cfg, err := store.LoadConfig(dir)
	if err != nil {
		return cfg, err
	}
	if a.API != "" {
		cfg.APIBaseURL = a.API
	}
	if a.Store != "" {
		cfg.Store = a.Store
	}
	return cfg, nil
}

func (a *App) openKV() (store.KV, string, error) {
	dir, err := a.dir()
	if err != nil {
		return nil, "", err
	}
	cfg, err := a.config(dir)
	if err != nil {
		return nil, "", err
	}
	kv, err := store.Open(dir, cfg)
	if err != nil {
		return nil, "", err
	}
	return kv, dir, nil
}

func (a *App) client() (*news.Client, error) {
	dir, err := a.dir()
	if err != nil {
		return nil, err
	}
	cfg, err := a.config(dir)
	if err != nil {
		return nil, err
	}
	token := ""
	if ti, err := store.GetToken(dir); err == nil && ti != nil {
		token = ti.Token
	}
	return news.NewClient(cfg.APIBaseURL, token), nil
}

// loadLists loads checklist definitions and restores saved checked state.
func loadLists(kv store.KV, dir string) ([]model.Checklist, error) {
	lists, err := store.LoadChecklists(dir)
	if err != nil {
		return nil, err
	}
	if err := checklist.RestoreAll(kv, lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func runTUI(app *App) error {
	kv, dir, err := app.openKV()
	if err != nil {
		return err
	}
	lists, err := loadLists(kv, dir)
	if err != nil {
		return err
	}
	points, err := store.LoadPlotPoints(dir)
	if err != nil {
		return err
	}
	client, err := app.client()
	if err != nil {
		return err
	}
	return tui.Run(kv, client, lists, points)
}
