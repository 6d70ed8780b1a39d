// Package console provides styled terminal output for provisioning runs.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles for console notes
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Console writes styled notes to a caller-owned writer.
type Console struct {
	w io.Writer
}

// New creates a console writing to w.
func New(w io.Writer) *Console {
	return &Console{w: w}
}

// Title prints a section title.
func (c *Console) Title(msg string) {
	fmt.Fprintln(c.w, TitleStyle.Render(msg))
}

// Success prints a success note.
func (c *Console) Success(format string, args ...any) {
	fmt.Fprintln(c.w, SuccessStyle.Render("✓ ")+fmt.Sprintf(format, args...))
}

// Error prints an error note.
func (c *Console) Error(format string, args ...any) {
	fmt.Fprintln(c.w, ErrorStyle.Render("✗ ")+fmt.Sprintf(format, args...))
}

// Warn prints a warning note.
func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintln(c.w, WarningStyle.Render("! ")+fmt.Sprintf(format, args...))
}

// Info prints an informational note.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintln(c.w, InfoStyle.Render("• ")+fmt.Sprintf(format, args...))
}

// Detail prints a dimmed detail line, indented under the previous note.
func (c *Console) Detail(format string, args ...any) {
	fmt.Fprintln(c.w, DimStyle.Render("  "+fmt.Sprintf(format, args...)))
}
