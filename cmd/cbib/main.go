// Package main provides the cbib CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cbib",
	Short: "Citation collection manager",
	Long: `cbib manages a collection of citations and exports it as BibTeX.

Citations live in a SQLite database under .cbib/ with content-based
deduplication. Export assigns stable "Surname.year" keys, resolving
collisions with letter suffixes. All commands output JSON by default
for easy integration with other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// getStartDir returns the directory to search for a workspace from, or exits
// with an error. CBIB_ROOT overrides the working directory.
func getStartDir() (string, int) {
	if root := os.Getenv("CBIB_ROOT"); root != "" {
		return root, 0
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}
	return cwd, 0
}
