package cli

import (
	"fmt"

	"todotxt-cli/internal/store"

	"github.com/spf13/cobra"
)

func newLsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Print the active file with line numbers",
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
			for i, line := range lines {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", i+1, line)
			}
			return nil
		},
	}
	return cmd
}
