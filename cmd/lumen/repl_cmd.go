package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumen/repl"
)

// newReplCommand builds `lumen repl`: the no-argument interactive mode.
func newReplCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive REPL session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(*configPath)
			colorEnabled := resolveColor(cfg.Color, os.Stdout)
			session := repl.New(cfg.Banner, cfg.Prompt, colorEnabled)
			return session.Start(os.Stdout)
		},
	}
}

// resolveColor applies the configured color mode, falling back to an
// isatty check on w for "auto" or any unrecognized value.
func resolveColor(mode string, w io.Writer) bool {
	switch colorMode(mode) {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return repl.AutoColor(w)
	}
}
