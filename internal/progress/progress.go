// Package progress prints the user-facing status lines of a generation run.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/receiptkeeper/assetkit/internal/brand"
)

const checkMark = "✓"

// Printer writes one line per event. Lines are styled only when the
// destination is a terminal.
type Printer struct {
	w      io.Writer
	styled bool
	ok     lipgloss.Style
	dim    lipgloss.Style
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	p := &Printer{w: w}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r := lipgloss.NewRenderer(f)
		p.styled = true
		p.ok = r.NewStyle().Foreground(lipgloss.Color(brand.Accent)).Bold(true)
		p.dim = r.NewStyle().Faint(true)
	}
	return p
}

// Generated reports that both launcher icons for a density were written.
func (p *Printer) Generated(tag string, size int) {
	dims := fmt.Sprintf("%dx%d", size, size)
	if p.styled {
		tag = p.dim.Render(tag)
	}
	fmt.Fprintf(p.w, "Generated %s icons in %s\n", dims, tag)
}

// Success prints a completion line prefixed with a check mark.
func (p *Printer) Success(format string, args ...any) {
	mark := checkMark
	if p.styled {
		mark = p.ok.Render(mark)
	}
	fmt.Fprintf(p.w, "%s %s\n", mark, fmt.Sprintf(format, args...))
}

// Info prints an indented detail line.
func (p *Printer) Info(format string, args ...any) {
	line := "  - " + fmt.Sprintf(format, args...)
	if p.styled {
		line = p.dim.Render(line)
	}
	fmt.Fprintln(p.w, line)
}
