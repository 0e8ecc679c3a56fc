package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cla7aye15I4nd/Tython/internal/diagfmt"
)

var checkCmd = &cobra.Command{
	Use:   "check <entry.py>",
	Short: "Resolve and lower an entry module without building it",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

// runCheck implements `tython check`: resolve + lower only, exiting 0
// if the module graph is clean and 1 with rendered diagnostics
// otherwise. Cobra's own error path would print "Error: ..." above
// usage, which is the wrong UX for a type-check failure, so runCheck
// renders diagnostics itself and calls os.Exit directly.
func runCheck(cmd *cobra.Command, args []string) error {
	flags, err := resolveCommonFlags(cmd)
	if err != nil {
		return err
	}

	cache := openCache(flags.cachePath)
	defer cache.Close()

	res, err := runPipeline(args[0], flags.maxDiagnostics, flags.stdlibDir, cache)
	if err != nil {
		return err
	}

	res.bag.Sort()
	if !flags.quiet {
		diagfmt.Write(os.Stdout, res.bag, res.fs, diagfmt.Options{Color: flags.color, Max: flags.maxDiagnostics})
	}

	if !res.clean {
		os.Exit(1)
	}
	return nil
}
