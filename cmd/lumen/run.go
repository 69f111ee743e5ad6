package main

import (
	"os"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumen/eval"
	"github.com/lumen-lang/lumen/internal/diagnostics"
	"github.com/lumen-lang/lumen/internal/sourceload"
	"github.com/lumen-lang/lumen/lexer"
	"github.com/lumen-lang/lumen/parser"
)

// newRunCommand builds `lumen run <path>`: read the whole file as
// program source, run the pipeline once, exit 0 on success or -1 on
// any lexer/parser error. Runtime errors print but do not change the
// exit code, per spec.md §6.
func newRunCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run <path>",
		Short: "Run a Lumen source file once and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = loadConfig(*configPath)
			return runFile(args[0])
		},
	}
}

func runFile(path string) error {
	src, err := sourceload.ReadFile(path)
	if err != nil {
		return errors.Trace(err)
	}

	printer := diagnostics.NewPrinter(os.Stdout, false)

	tokens, err := lexer.Tokenize(src)
	if err != nil {
		if lexErr, ok := errors.Cause(err).(*lexer.Error); ok {
			printer.LexError(lexErr.Offset)
			os.Exit(-1)
		}
		return errors.Trace(err)
	}

	stmts, diags := parser.New(tokens).Parse()
	if diags != nil {
		printer.ParseErrors(diags)
		os.Exit(-1)
	}

	ev := eval.New()
	ev.Writer = os.Stdout
	for _, stmt := range stmts {
		if _, err := ev.Eval(stmt); err != nil {
			printer.RuntimeError(err)
			continue
		}
	}
	return nil
}
