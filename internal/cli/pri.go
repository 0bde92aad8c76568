package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"todotxt-cli/internal/mutate"
	"todotxt-cli/internal/tui"

	"github.com/spf13/cobra"
)

const clearPriorityChoice = "none (clear priority)"

func newPriCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pri <line> [A-Z|-]",
		Short:         "Set or clear a task's priority (picker when the letter is omitted)",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, badLineArgError{arg: args[0]})
			}

			var letter string
			if len(args) == 2 {
				letter = strings.ToUpper(strings.TrimSpace(args[1]))
			} else {
				if app.NoInput {
					return writeErr(cmd, errors.New("no priority given"))
				}
				letter, err = pickPriority()
				if err != nil {
					if errors.Is(err, tui.ErrCanceled) {
						return err
					}
					return writeErr(cmd, err)
				}
			}

			line, err := app.updateLine(n, func(l string) (mutate.Result, error) {
				return mutate.SetPriority(l, letter)
			})
			if err != nil {
				return writeErr(cmd, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
	return cmd
}

func pickPriority() (string, error) {
	choices := make([]string, 0, 27)
	for c := 'A'; c <= 'Z'; c++ {
		choices = append(choices, string(c))
	}
	choices = append(choices, clearPriorityChoice)

	picked, err := tui.RunSelect("Priority", choices)
	if err != nil {
		return "", err
	}
	if picked == clearPriorityChoice {
		return "-", nil
	}
	return picked, nil
}
