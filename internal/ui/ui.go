// Package ui holds terminal styles for human-facing output.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	purple = lipgloss.Color("99")
	red    = lipgloss.Color("204")
	dim    = lipgloss.Color("243")
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(purple).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(dim)
	errorStyle   = lipgloss.NewStyle().Foreground(red)
)

// Heading renders a section title.
func Heading(format string, a ...any) string {
	return headingStyle.Render(fmt.Sprintf(format, a...))
}

// Muted renders secondary text.
func Muted(s string) string { return mutedStyle.Render(s) }

// ErrorMsg renders a failure line.
func ErrorMsg(format string, a ...any) string {
	return errorStyle.Render("✗") + " " + fmt.Sprintf(format, a...)
}

// PrintError writes err to w as a failure line.
func PrintError(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, ErrorMsg("%v", err))
}
