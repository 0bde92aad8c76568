package cli

import (
	"errors"
	"fmt"
	"strconv"

	"todotxt-cli/internal/mutate"
	"todotxt-cli/internal/store"
	"todotxt-cli/internal/tagutil"
	"todotxt-cli/internal/tui"

	"github.com/spf13/cobra"
)

func newTagsCmd(app *App) *cobra.Command {
	var contexts bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the project tags used in the active file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.activeFile()
			if err != nil {
				return writeErr(cmd, err)
			}
			lines, err := store.ReadLines(path)
			if err != nil {
				return writeErr(cmd, err)
			}

			tags := tagutil.Projects(lines)
			if contexts {
				tags = tagutil.Contexts(lines)
			}
			for _, tag := range tags {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&contexts, "contexts", false, "List @context tags instead of +project tags")

	cmd.AddCommand(newTagsAddCmd(app))

	return cmd
}

func newTagsAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "add <line> [tags...]",
		Short:         "Add +project tags to a task (multi-select picker when omitted)",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, badLineArgError{arg: args[0]})
			}

			tags := args[1:]
			if len(tags) == 0 {
				if app.NoInput {
					return writeErr(cmd, errors.New("no tags given"))
				}
				path, err := app.activeFile()
				if err != nil {
					return writeErr(cmd, err)
				}
				lines, err := store.ReadLines(path)
				if err != nil {
					return writeErr(cmd, err)
				}
				known := tagutil.Projects(lines)
				if len(known) == 0 {
					return writeErr(cmd, errors.New("no known tags in this file; pass tags as arguments"))
				}
				tags, err = tui.RunMultiSelect("Add tags", known, nil)
				if err != nil {
					if errors.Is(err, tui.ErrCanceled) {
						return err
					}
					return writeErr(cmd, err)
				}
			}

			line, err := app.updateLine(n, func(l string) (mutate.Result, error) {
				return mutate.InsertTags(l, tags), nil
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
