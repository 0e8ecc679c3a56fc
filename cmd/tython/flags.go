package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// commonFlags resolves the persistent flags every subcommand reads,
// mirroring the teacher's practice of pulling cobra flags once at the
// top of RunE instead of scattering Flags().Get* calls.
type commonFlags struct {
	color          bool
	quiet          bool
	maxDiagnostics int
	stdlibDir      string
	cachePath      string
}

func resolveCommonFlags(cmd *cobra.Command) (commonFlags, error) {
	root := cmd.Root().PersistentFlags()

	colorMode, err := root.GetString("color")
	if err != nil {
		return commonFlags{}, err
	}
	quiet, err := root.GetBool("quiet")
	if err != nil {
		return commonFlags{}, err
	}
	maxDiagnostics, err := root.GetInt("max-diagnostics")
	if err != nil {
		return commonFlags{}, err
	}
	stdlibDir, err := root.GetString("stdlib-dir")
	if err != nil {
		return commonFlags{}, err
	}
	cachePath, err := root.GetString("cache")
	if err != nil {
		return commonFlags{}, err
	}

	return commonFlags{
		color:          wantColor(colorMode),
		quiet:          quiet,
		maxDiagnostics: maxDiagnostics,
		stdlibDir:      stdlibDir,
		cachePath:      cachePath,
	}, nil
}

func wantColor(mode string) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
