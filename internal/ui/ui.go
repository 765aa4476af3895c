// Package ui renders the CLI's status lines. Markers are colored with
// lipgloss when the output is a terminal and printed plain otherwise.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes status lines to one output stream.
type Printer struct {
	w       io.Writer
	success lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
	heading lipgloss.Style
	dim     lipgloss.Style
}

// NewPrinter returns a Printer whose color profile is detected from w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		heading: r.NewStyle().Bold(true),
		dim:     r.NewStyle().Faint(true),
	}
}

// Success prints "✓ <message>".
func (p *Printer) Success(format string, args ...interface{}) {
	fmt.Fprintln(p.w, p.success.Render("✓")+" "+fmt.Sprintf(format, args...))
}

// Warn prints "⚠ Warning: <message>".
func (p *Printer) Warn(format string, args ...interface{}) {
	fmt.Fprintln(p.w, p.warn.Render("⚠ Warning:")+" "+fmt.Sprintf(format, args...))
}

// Error prints "Error: <message>".
func (p *Printer) Error(format string, args ...interface{}) {
	fmt.Fprintln(p.w, p.fail.Render("Error:")+" "+fmt.Sprintf(format, args...))
}

// Heading prints a bold line.
func (p *Printer) Heading(format string, args ...interface{}) {
	fmt.Fprintln(p.w, p.heading.Render(fmt.Sprintf(format, args...)))
}

// Faint renders s dimmed without printing it.
func (p *Printer) Faint(s string) string { return p.dim.Render(s) }

// Println prints an unstyled line.
func (p *Printer) Println(args ...interface{}) {
	fmt.Fprintln(p.w, args...)
}

// Printf prints unstyled formatted text.
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}
