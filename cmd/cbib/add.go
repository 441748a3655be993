package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/citekit/citekit/bibtex"
	"github.com/citekit/citekit/citation"
	"github.com/spf13/cobra"
)

var addApp string

func init() {
	addCmd.Flags().StringVar(&addApp, "app", "", "Tool or source the citations belong to")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add [file.bib]",
	Short: "Add citations from a BibTeX file",
	Long: `Add citations from a BibTeX file to the workspace store.

Reads from stdin when no file is given. Entries already in the store
(matched on content, not key) are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	root := requireWorkspace()

	var raw []byte
	var err error
	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
		if err != nil {
			exitWithError(ExitError, "reading %s: %v", args[0], err)
		}
	} else {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			exitWithError(ExitError, "reading stdin: %v", err)
		}
	}

	entries, err := bibtex.ParseAll(string(raw))
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}
	if len(entries) == 0 {
		exitWithError(ExitDataError, "no bibliography records found in input")
	}

	cfg := loadConfig(root)
	app := addApp
	if app == "" {
		app = cfg.DefaultApp
	}
	for _, e := range entries {
		if e.App == "" {
			e.App = app
		}
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

// exitCodeFor maps parse and validation failures to the data-error code.
func exitCodeFor(err error) int {
	var pe *bibtex.ParseError
	var ve *citation.ValidationError
	if errors.As(err, &pe) || errors.As(err, &ve) {
		return ExitDataError
	}
	return ExitError
}

func reportAdded(added, skipped int) {
	if humanOutput {
		outputHuman("Added %d citation(s)", added)
		if skipped > 0 {
			outputHuman(" (%d duplicate(s) skipped)", skipped)
		}
		fmt.Println()
	} else {
		outputJSON(AddResponse{
			Status:  "added",
			Added:   added,
			Skipped: skipped,
		})
	}
}
