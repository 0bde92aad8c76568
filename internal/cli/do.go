package cli

import (
	"fmt"
	"strconv"

	"todotxt-cli/internal/model"
	"todotxt-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newDoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <line>",
		Short: "Toggle a task's completion state, stamping today's date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, badLineArgError{arg: args[0]})
			}

			line, err := app.updateLine(n, func(l string) (mutate.Result, error) {
				return mutate.ToggleComplete(l, today()), nil
			})
			if err != nil {
				return writeErr(cmd, err)
			}

			if model.Parse(line).Completed {
				notifyInfo("completed line %d", n)
			} else {
				notifyInfo("reopened line %d", n)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
	return cmd
}
