package cli

import (
	"path/filepath"

	"todotxt-cli/internal/store"

	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Create a todo file (and its done companion) and make it active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			if err := store.EnsureFile(path); err != nil {
				return writeErr(cmd, err)
			}
			if err := store.EnsureFile(store.DonePath(path)); err != nil {
				return writeErr(cmd, err)
			}

			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			if !cfg.HasFile(path) {
				cfg.Files = append(cfg.Files, path)
			}
			cfg.CurrentFile = path
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}

			notifyInfo("initialized %s (done file: %s)", path, store.DonePath(path))
			return nil
		},
	}
	return cmd
}
