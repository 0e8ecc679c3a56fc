package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cla7aye15I4nd/Tython/internal/diagfmt"
)

var buildCmd = &cobra.Command{
	Use:   "build <entry.py>",
	Short: "Resolve, lower, and (where the emitter would run) build an entry module",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

// runBuild implements `tython build`: resolve the import graph, run
// Typed Lowering over every module, and report the compiler's scope
// cut honestly once lowering succeeds cleanly — this repository's
// emitter is a named interface only (spec.md's explicit scope cut),
// so there is no machine code to produce past this point.
func runBuild(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("build failed: %d diagnostic(s)", res.bag.Len())
	}

	fmt.Fprintln(os.Stdout, "codegen not implemented in this build")
	return nil
}
