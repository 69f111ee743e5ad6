// Command lumen is the Lumen interpreter's command-line entry point. It
// wraps the lexer/parser/evaluator pipeline with three modes: run a
// file once, start an interactive REPL, or serve REPL sessions over
// TCP — replacing the teacher's hand-rolled os.Args switch with a
// github.com/spf13/cobra command tree.
package main

import (
	"fmt"
	"os"

	"github.com/lumen-lang/lumen/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig is shared by every subcommand that reads the optional
// driver config file. A file that cannot be read or parsed is reported
// on stderr and the defaults apply.
func loadConfig(path string) config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return config.Default()
	}
	return cfg
}
