package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cla7aye15I4nd/Tython/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tython",
	Short: "Tython ahead-of-time compiler",
	Long:  "Tython compiles a statically-typed subset of Python 3 to a native executable.",
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to report")
	rootCmd.PersistentFlags().String("stdlib-dir", "", "bundled stdlib directory searched last on imports")
	rootCmd.PersistentFlags().String("cache", defaultCachePath(), "build cache file (empty disables caching)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
