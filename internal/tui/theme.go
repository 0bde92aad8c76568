// Package tui provides the interactive prompt and picker programs the CLI
// falls back to when an argument is not given on the command line.
package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"})
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// applyThemePreference configures Lip Gloss's background and color-profile
// detection before a program starts.
//
// Some terminals don't reliably report their background, which can cause
// lipgloss.AdaptiveColor to pick the wrong variant.
//
// Priority:
// 1) TODOTXT_TUI_THEME=light|dark
// 2) COLORFGBG heuristic (format like "15;0" = fg;bg)
func applyThemePreference() {
	if v := strings.TrimSpace(os.Getenv("TODOTXT_TUI_COLOR")); v != "" {
		switch strings.ToLower(v) {
		case "none":
			lipgloss.SetColorProfile(termenv.Ascii)
		case "16":
			lipgloss.SetColorProfile(termenv.ANSI)
		case "256":
			lipgloss.SetColorProfile(termenv.ANSI256)
		case "truecolor":
			lipgloss.SetColorProfile(termenv.TrueColor)
		}
	}

	if v := strings.TrimSpace(os.Getenv("TODOTXT_TUI_THEME")); v != "" {
		switch strings.ToLower(v) {
		case "light":
			lipgloss.SetHasDarkBackground(false)
			return
		case "dark":
			lipgloss.SetHasDarkBackground(true)
			return
		}
	}

	// Heuristic: COLORFGBG is often "fg;bg" (sometimes more segments).
	// Use the last segment as bg.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7 || bg == 8)
		}
	}
}
