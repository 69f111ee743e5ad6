// Package diagnostics formats lexer, parser, and runtime errors for
// display, following the driver format spec.md §6 prescribes: lexer and
// parser diagnostics are "<message> at: <offset>", one per line;
// runtime errors print the message alone. REPL output is colorized
// with fatih/color when the stream is a real terminal; file-mode output
// is always plain, matching the original main.cpp's plain std::cout.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/lumen-lang/lumen/parser"
)

// Printer writes formatted diagnostics to an output stream, optionally
// colorized.
type Printer struct {
	Writer io.Writer
	Color  bool
}

// NewPrinter creates a Printer. Pass colorEnabled=true only when Writer
// is known to be a real terminal (see internal/config and the isatty
// check in the repl package).
func NewPrinter(w io.Writer, colorEnabled bool) *Printer {
	return &Printer{Writer: w, Color: colorEnabled}
}

// LexError reports a lexer failure at the given byte offset.
func (p *Printer) LexError(offset int) {
	p.line(color.New(color.FgRed), fmt.Sprintf("Lexer error at: %d", offset))
}

// ParseErrors reports the full parser diagnostic list, one line each.
func (p *Printer) ParseErrors(diags []parser.Diagnostic) {
	red := color.New(color.FgRed)
	for _, d := range diags {
		p.line(red, d.String())
	}
}

// RuntimeError reports a runtime error message with no offset.
func (p *Printer) RuntimeError(err error) {
	p.line(color.New(color.FgYellow), err.Error())
}

func (p *Printer) line(c *color.Color, msg string) {
	if p.Color {
		c.Fprintln(p.Writer, msg)
		return
	}
	fmt.Fprintln(p.Writer, msg)
}
