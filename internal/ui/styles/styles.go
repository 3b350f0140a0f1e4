// Package styles provides shared lipgloss styles for status output.
//
// Color is decided once at startup via [Detect] and applied through
// the render helpers. With color disabled every helper returns its
// input unchanged, so callers never branch on color support.
package styles

import (
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

// Palette colors
var (
	successColor = lipgloss.Color("82")  // green
	warnColor    = lipgloss.Color("214") // orange
	errorColor   = lipgloss.Color("196") // red
	mutedColor   = lipgloss.Color("240") // gray
)

var (
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	warnStyle    = lipgloss.NewStyle().Foreground(warnColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// enabled tracks whether styled rendering is active.
var enabled = false

// SetColorEnabled turns styled rendering on or off.
func SetColorEnabled(on bool) {
	enabled = on
}

// ColorEnabled reports whether styled rendering is active.
func ColorEnabled() bool {
	return enabled
}

// Detect decides color enablement from the configured mode ("auto",
// "always", "never") and the output terminal. In auto mode color is on
// only for a terminal whose profile supports it.
func Detect(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	p := colorprofile.Detect(f, os.Environ())
	return p != colorprofile.Ascii && p != colorprofile.NoTTY
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success renders text in the success color.
func Success(text string) string { return render(successStyle, text) }

// Warn renders text in the warning color.
func Warn(text string) string { return render(warnStyle, text) }

// Error renders text in the error color.
func Error(text string) string { return render(errorStyle, text) }

// Muted renders text in the muted color.
func Muted(text string) string { return render(mutedStyle, text) }

// Bold renders text in bold.
func Bold(text string) string { return render(boldStyle, text) }
