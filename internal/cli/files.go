package cli

import (
	"errors"
	"fmt"
	"os"

	"todotxt-cli/internal/store"
	"todotxt-cli/internal/tui"

	"github.com/spf13/cobra"
)

func newFilesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "List the configured todo files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			if len(cfg.Files) == 0 {
				return writeErr(cmd, store.ErrNoFiles)
			}
			for _, f := range cfg.Files {
				marker := " "
				if f == cfg.CurrentFile {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, f)
			}
			return nil
		},
	}

	cmd.AddCommand(newFilesUseCmd(app))

	return cmd
}

func newFilesUseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "use [path]",
		Short:         "Make a configured file the active one (picker when omitted)",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			if len(cfg.Files) == 0 {
				return writeErr(cmd, store.ErrNoFiles)
			}

			var path string
			if len(args) == 1 {
				path = args[0]
				if !cfg.HasFile(path) {
					// Adopt an existing file on disk rather than failing.
					if _, err := os.Stat(path); err != nil {
						return writeErr(cmd, fmt.Errorf("not a configured todo file: %s", path))
					}
					notifyWarn("%s was not configured; adding it", path)
					cfg.Files = append(cfg.Files, path)
				}
			} else {
				if app.NoInput {
					return writeErr(cmd, errors.New("no file given"))
				}
				// A single configured file resolves without a picker.
				path, err = tui.RunSelect("Use todo file", cfg.Files)
				if err != nil {
					if errors.Is(err, tui.ErrCanceled) {
						return err
					}
					return writeErr(cmd, err)
				}
			}

			cfg.CurrentFile = path
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			notifyInfo("active todo file: %s", path)
			return nil
		},
	}
	return cmd
}
