package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// colorMode names the three recognized color settings and implements
// pflag.Value, whose Set rejects any other value. No --color flag is
// registered on the command tree; resolveColor reads the setting from
// the config file's color field.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func (c *colorMode) String() string { return string(*c) }

func (c *colorMode) Set(v string) error {
	switch colorMode(v) {
	case colorAuto, colorAlways, colorNever:
		*c = colorMode(v)
		return nil
	}
	return errInvalidColorMode{value: v}
}

func (c *colorMode) Type() string { return "color" }

type errInvalidColorMode struct{ value string }

func (e errInvalidColorMode) Error() string {
	return "invalid --color value " + e.value + " (want auto, always, or never)"
}

var _ pflag.Value = (*colorMode)(nil)

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "lumen",
		Short: "Lumen is a tree-walking interpreter for a small imperative language",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML driver config file")

	root.AddCommand(newRunCommand(&configPath))
	root.AddCommand(newReplCommand(&configPath))
	root.AddCommand(newServeCommand(&configPath))

	return root
}
