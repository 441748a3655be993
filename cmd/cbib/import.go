package main

import (
	"github.com/citekit/citekit/citation"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file.json> [file.json...]",
	Short: "Import citations from JSON files",
	Long: `Import citations from JSON files to the workspace store.

Each file holds an array of citation objects, as written by tools that
record their own references. Duplicate entries (matched on content) are
skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	root := requireWorkspace()

	var entries []*citation.Entry
	for _, path := range args {
		batch, err := citation.LoadJSONFile(path)
		if err != nil {
			exitWithError(exitCodeFor(err), "importing %s: %v", path, err)
		}
		entries = append(entries, batch...)
	}

	reg, err := openRegistry(root)
	if err != nil {
		exitWithError(ExitError, "opening citation store: %v", err)
	}
	defer reg.Close()

	added, err := reg.AddAll(entries)
	if err != nil {
		exitWithError(ExitError, "storing citations: %v", err)
	}

	reportAdded(added, len(entries)-added)
	return nil
}
