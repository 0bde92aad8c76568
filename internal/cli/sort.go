package cli

import (
	"errors"

	"todotxt-cli/internal/sorting"
	"todotxt-cli/internal/store"
	"todotxt-cli/internal/tui"

	"github.com/spf13/cobra"
)

func newSortCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sort [date|priority|project|context|due]",
		Short:         "Reorder the active file, grouping with blank separators",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var mode sorting.Mode
			if len(args) == 1 {
				m, err := sorting.ParseMode(args[0])
				if err != nil {
					return writeErr(cmd, err)
				}
				mode = m
			} else {
				if app.NoInput {
					return writeErr(cmd, errors.New("no sort mode given"))
				}
				names := make([]string, 0, len(sorting.Modes()))
				for _, m := range sorting.Modes() {
					names = append(names, string(m))
				}
				picked, err := tui.RunSelect("Sort by", names)
				if err != nil {
					if errors.Is(err, tui.ErrCanceled) {
						return err
					}
					return writeErr(cmd, err)
				}
				mode = sorting.Mode(picked)
			}

			path, err := app.activeFile()
			if err != nil {
				return writeErr(cmd, err)
			}
			lines, err := store.ReadLines(path)
			if err != nil {
				return writeErr(cmd, err)
			}
			sorted, err := sorting.Sort(lines, mode)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := store.WriteLines(path, sorted); err != nil {
				return writeErr(cmd, err)
			}

			notifyInfo("sorted %s by %s", path, mode)
			return nil
		},
	}
	return cmd
}
