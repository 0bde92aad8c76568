package cli

import (
	"fmt"
	"os"
	"strings"

	"todotxt-cli/internal/docs"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show documentation on the todo.txt format and this tool",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, topic := range docs.Topics() {
					fmt.Fprintln(cmd.OutOrStdout(), topic)
				}
				return nil
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `todotxt docs` to list topics)", topic))
			}

			if raw {
				fmt.Fprint(cmd.OutOrStdout(), body)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(body))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")

	return cmd
}

// renderMarkdown renders help topics for the terminal, falling back to the
// raw markdown when the renderer cannot be built.
//
// Avoid WithAutoStyle here: it can block waiting on terminal queries in
// some setups, so the style is picked from the theme env override instead.
func renderMarkdown(md string) string {
	style := "dark"
	if strings.EqualFold(strings.TrimSpace(os.Getenv("TODOTXT_TUI_THEME")), "light") {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
