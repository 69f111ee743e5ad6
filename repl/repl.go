// Package repl implements the interactive Read-Eval-Print Loop: reading
// a line at a time (or, via the `file:` directive, a whole file's
// contents), running the full lexer/parser/evaluator pipeline against
// it, and printing diagnostics or nothing (print statements write their
// own output) back to the user.
//
// Line editing and history come from github.com/chzyer/readline exactly
// as the teacher's REPL does; colorized diagnostics come from
// github.com/fatih/color, gated by github.com/mattn/go-isatty so piped
// output stays plain. Panic/recover is used only at this boundary, to
// contain a programming-error panic inside one line's evaluation
// without killing the whole session — matching how the teacher's own
// executeWithRecovery recovers around one line at a time.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/juju/errors"
	"github.com/mattn/go-isatty"

	"github.com/lumen-lang/lumen/eval"
	"github.com/lumen-lang/lumen/internal/diagnostics"
	"github.com/lumen-lang/lumen/internal/sourceload"
	"github.com/lumen-lang/lumen/lexer"
	"github.com/lumen-lang/lumen/parser"
)

var (
	blueColor  = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

// Repl is one interactive session's configuration and state.
type Repl struct {
	Banner string
	Prompt string
	Color  bool
}

// New creates a Repl. Color defaults to whatever the caller determined
// by checking isatty.IsTerminal against the output stream.
func New(banner, prompt string, colorEnabled bool) *Repl {
	return &Repl{Banner: banner, Prompt: prompt, Color: colorEnabled}
}

// AutoColor reports whether w looks like a real terminal, for callers
// that want the teacher's "auto" color default rather than an explicit
// "always" or "never" setting.
func AutoColor(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *Repl) printBanner(w io.Writer) {
	line := strings.Repeat("-", 48)
	r.colorFprintln(w, blueColor, line)
	r.colorFprintln(w, greenColor, r.Banner)
	r.colorFprintln(w, blueColor, line)
	r.colorFprintln(w, cyanColor, "Type your code and press enter")
	r.colorFprintln(w, cyanColor, "Type '.exit' to quit")
	r.colorFprintln(w, cyanColor, "A line starting with 'file:<path>' loads that file as source")
	r.colorFprintln(w, blueColor, line)
}

func (r *Repl) colorFprintln(w io.Writer, c *color.Color, msg string) {
	if r.Color {
		c.Fprintln(w, msg)
		return
	}
	fmt.Fprintln(w, msg)
}

// Start runs the REPL loop until the user exits or input ends.
func (r *Repl) Start(writer io.Writer) error {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt, Stdout: writer})
	if err != nil {
		return err
	}
	defer rl.Close()

	ev := eval.New()
	ev.Writer = writer
	printer := diagnostics.NewPrinter(writer, r.Color)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			fmt.Fprintln(writer, "Good bye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(writer, "Good bye!")
			return nil
		}

		src, err := sourceload.ResolveLine(line)
		if err != nil {
			printer.RuntimeError(err)
			continue
		}

		r.runOnce(src, ev, printer)
	}
}

// runOnce executes one batch of source against a persistent evaluator,
// recovering from any panic so a single bad line cannot end the
// session — the only place in this repo panic/recover crosses the
// evaluator boundary.
func (r *Repl) runOnce(src string, ev *eval.Evaluator, printer *diagnostics.Printer) {
	defer func() {
		if rec := recover(); rec != nil {
			printer.RuntimeError(fmt.Errorf("internal error: %v", rec))
		}
	}()

	tokens, err := lexer.Tokenize(src)
	if err != nil {
		if lexErr, ok := errors.Cause(err).(*lexer.Error); ok {
			printer.LexError(lexErr.Offset)
			return
		}
		printer.RuntimeError(err)
		return
	}

	stmts, diags := parser.New(tokens).Parse()
	if diags != nil {
		printer.ParseErrors(diags)
		return
	}

	for _, stmt := range stmts {
		if _, err := ev.Eval(stmt); err != nil {
			printer.RuntimeError(err)
			continue
		}
	}
}
