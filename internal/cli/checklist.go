package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pretrade/internal/checklist"
)

func newChecklistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Work with pre-trade checklists",
	}
	cmd.AddCommand(newChecklistLsCmd(app))
	cmd.AddCommand(newChecklistToggleCmd(app))
	cmd.AddCommand(newChecklistPruneCmd(app))
	return cmd
}

func newChecklistLsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List checklists with progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, dir, err := app.openKV()
			if err != nil {
				return err
			}
			lists, err := loadLists(kv, dir)
			if err != nil {
				return err
			}
			var lines []string
			for i, c := range lists {
				if i > 0 {
					lines = append(lines, "")
				}
				s := checklist.Compute(c)
				lines = append(lines, titleStyle.Render(c.Name)+mutedStyle.Render("  ("+c.ID+")"))
				lines = append(lines, progressLine(s, 28))
				for _, it := range c.Items {
					box := boxUnchecked
					if it.Checked {
						box = successStyle.Render(boxChecked)
					}
					req := ""
					if it.Required {
						req = dangerStyle.Render(" *")
					}
					lines = append(lines, fmt.Sprintf("  %s %s%s %s", box, it.Text, req, mutedStyle.Render("["+it.ID+"]")))
				}
			}
			if len(lines) == 0 {
				lines = []string{mutedStyle.Render("no checklists")}
			}
			panel(lines)
			return nil
		},
	}
}

func newChecklistToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <checklist-id> <item-id>",
		Short: "Toggle one checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, dir, err := app.openKV()
			if err != nil {
				return err
			}
			lists, err := loadLists(kv, dir)
			if err != nil {
				return err
			}
			for i := range lists {
				if lists[i].ID != args[0] {
					continue
				}
				if lists[i].Item(args[1]) == nil {
					fail("no item " + args[1] + " on checklist " + args[0])
					return fmt.Errorf("unknown item %q", args[1])
				}
				checked, err := checklist.Toggle(kv, &lists[i], args[1])
				if err != nil {
					return err
				}
				if checked {
					ok("checked")
				} else {
					ok("unchecked")
				}
				fmt.Println(progressLine(checklist.Compute(lists[i]), 28))
				return nil
			}
			fail("no checklist " + args[0])
			return fmt.Errorf("unknown checklist %q", args[0])
		},
	}
}

func newChecklistPruneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Delete stored state for items no checklist defines anymore",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, dir, err := app.openKV()
			if err != nil {
				return err
			}
			lists, err := loadLists(kv, dir)
			if err != nil {
				return err
			}
			removed, err := checklist.Prune(kv, lists)
			if err != nil {
				return err
			}
			ok(fmt.Sprintf("removed %d stale entries", removed))
			return nil
		},
	}
}
