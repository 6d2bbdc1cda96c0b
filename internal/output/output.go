// Package output renders the console text of an export run.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Writer handles console output for a run. Report text goes to Stdout;
// errors and verbose diagnostics go to Stderr.
type Writer struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Color   bool
	Verbose bool
}

// New creates a Writer on os.Stdout and os.Stderr. Color is only used when
// requested and the environment allows it.
func New(color, verbose bool) *Writer {
	return &Writer{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Color:   color && ColorsEnabled(),
		Verbose: verbose,
	}
}

// ColorsEnabled reports whether the environment permits styled output.
func ColorsEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

// Println writes a line of report text.
func (w *Writer) Println(a ...any) {
	fmt.Fprintln(w.Stdout, a...)
}

// Printf writes formatted report text.
func (w *Writer) Printf(format string, a ...any) {
	fmt.Fprintf(w.Stdout, format, a...)
}

// Section writes a "========== title ==========" header.
func (w *Writer) Section(title string) {
	line := fmt.Sprintf("========== %s ==========", title)
	if w.Color {
		line = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Render(line)
	}
	fmt.Fprintln(w.Stdout, line)
}

// Error writes an "Error: " line for err followed by indented hint lines.
func (w *Writer) Error(err error, hints ...string) {
	label := "Error:"
	if w.Color {
		label = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Render(label)
	}
	fmt.Fprintf(w.Stderr, "%s %s\n", label, err)
	for _, h := range hints {
		fmt.Fprintln(w.Stderr, h)
	}
}

// Debugf writes a diagnostic line when verbose output is on.
func (w *Writer) Debugf(format string, a ...any) {
	if !w.Verbose {
		return
	}
	msg := fmt.Sprintf(format, a...)
	if w.Color {
		msg = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(msg)
	}
	fmt.Fprintln(w.Stderr, msg)
}

// Count formats n with thousands separators.
func Count(n int64) string {
	return humanize.Comma(n)
}

// Size formats a byte count, e.g. "4.2 MB".
func Size(b int64) string {
	if b < 0 {
		b = 0
	}
	return humanize.Bytes(uint64(b))
}
