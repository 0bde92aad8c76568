package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"todotxt-cli/internal/mutate"
	"todotxt-cli/internal/store"
	"todotxt-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	File    string
	NoInput bool
	Verbose bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todotxt",
		Short:        "todo.txt task list manager (CLI + pickers)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Register a todo file and make it active
  todotxt init ~/todo.txt

  # Capture a task
  todotxt add "call mom +family @phone due:2024-02-14"

  # Reorder the list, grouped with blank separators
  todotxt sort priority

  # Move completed tasks to the companion done file
  todotxt archive
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if app.Verbose {
			setNotifyDebug()
		}
	}

	cmd.PersistentFlags().StringVar(&app.File, "file", envOr("TODOTXT_FILE", ""), "Todo file to operate on (default: the active configured file)")
	cmd.PersistentFlags().BoolVar(&app.NoInput, "no-input", false, "Never open interactive prompts; missing arguments become errors")
	cmd.PersistentFlags().BoolVar(&app.Verbose, "verbose", false, "Debug logging on stderr")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newFilesCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newLsCmd(app))
	cmd.AddCommand(newDoCmd(app))
	cmd.AddCommand(newPriCmd(app))
	cmd.AddCommand(newSortCmd(app))
	cmd.AddCommand(newArchiveCmd(app))
	cmd.AddCommand(newTagsCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// activeFile resolves the file a command operates on: --file / TODOTXT_FILE
// first, then the configured active file. With several configured files and
// no active one, an interactive run opens a picker; --no-input falls through
// to the config error.
func (app *App) activeFile() (string, error) {
	if app.File != "" {
		return app.File, nil
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return "", err
	}
	path, err := cfg.ActiveFile()
	if err == nil {
		return path, nil
	}
	if errors.Is(err, store.ErrNoFiles) || app.NoInput || len(cfg.Files) < 2 {
		return "", err
	}
	picked, perr := tui.RunSelect("Pick a todo file", cfg.Files)
	if perr != nil {
		return "", err
	}
	return picked, nil
}

// updateLine applies a mutation to the 1-based line n of the active file and
// persists the result when it changed. It returns the (possibly updated)
// line for display.
func (app *App) updateLine(n int, fn func(string) (mutate.Result, error)) (string, error) {
	path, err := app.activeFile()
	if err != nil {
		return "", err
	}
	lines, err := store.ReadLines(path)
	if err != nil {
		return "", err
	}
	if n < 1 || n > len(lines) {
		return "", lineRangeError{path: path, n: n, max: len(lines)}
	}
	res, err := fn(lines[n-1])
	if err != nil {
		return "", err
	}
	if !res.Changed {
		notifyDebug("line %d unchanged", n)
		return res.Line, nil
	}
	lines[n-1] = res.Line
	if err := store.WriteLines(path, lines); err != nil {
		return "", err
	}
	return res.Line, nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
