package cli

import (
	"errors"

	"todotxt-cli/internal/store"

	"github.com/spf13/cobra"
)

func newArchiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Move completed tasks to the companion done file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.activeFile()
			if err != nil {
				return writeErr(cmd, err)
			}
			donePath := store.DonePath(path)

			report, err := store.Archive(
				store.Collection{Path: path},
				store.Collection{Path: donePath},
			)
			if err != nil {
				var partial *store.PartialCommitError
				if errors.As(err, &partial) {
					// The user has to know exactly which half is on disk.
					notifyError("%s", partial.Error())
				}
				return writeErr(cmd, err)
			}

			if report.Moved == 0 {
				notifyInfo("nothing to archive in %s", path)
				return nil
			}
			notifyInfo("archived %d tasks to %s (%d remaining)", report.Moved, donePath, report.Remaining)
			return nil
		},
	}
	return cmd
}
