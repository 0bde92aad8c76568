package cli

import (
	"errors"
	"fmt"
	"strings"

	"todotxt-cli/internal/model"
	"todotxt-cli/internal/store"
	"todotxt-cli/internal/tui"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var top bool

	cmd := &cobra.Command{
		Use:           "add [text...]",
		Short:         "Capture a new task (prompts when no text is given)",
		SilenceUsage:  true,
		SilenceErrors: true, // cancel should be quiet (non-zero exit)
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				if app.NoInput {
					return writeErr(cmd, errors.New("no task text given"))
				}
				entered, err := tui.RunInput("New task", "(A) call mom +family @phone")
				if err != nil {
					if errors.Is(err, tui.ErrCanceled) {
						return err
					}
					return writeErr(cmd, err)
				}
				text = entered
			}
			if text == "" {
				return nil
			}

			path, err := app.activeFile()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := store.EnsureFile(path); err != nil {
				return writeErr(cmd, err)
			}
			lines, err := store.ReadLines(path)
			if err != nil {
				return writeErr(cmd, err)
			}

			line := stampCreationDate(text, today())
			if top {
				lines = append([]string{line}, lines...)
			} else {
				lines = append(lines, line)
			}
			if err := store.WriteLines(path, lines); err != nil {
				return writeErr(cmd, err)
			}

			notifyInfo("added to %s", path)
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	cmd.Flags().BoolVar(&top, "top", false, "Insert at the top of the file instead of appending")

	return cmd
}

// stampCreationDate puts today's date in the creation-date slot: after the
// priority marker when the text starts with one, else at the front. Text
// that already has a creation date there is left alone.
func stampCreationDate(text, date string) string {
	t := model.Parse(text)
	if t.CreationDate != "" {
		return text
	}
	if t.Priority != "" {
		return text[:len("(X) ")] + date + " " + text[len("(X) "):]
	}
	return date + " " + text
}
