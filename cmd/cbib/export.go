package main

import (
	"github.com/citekit/citekit/bibtex"
	"github.com/spf13/cobra"
)

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path (overrides configured bibliography)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collection as a BibTeX file",
	Long: `Export all stored citations as a BibTeX bibliography.

Keys follow the "Surname.year" convention; entries that would share a
key get letter suffixes (Smith.2024.a, Smith.2024.b). The file is
written atomically to the configured bibliography path.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	root := requireWorkspace()
	cfg := loadConfig(root)

	path := exportOutput
	if path == "" {
		path = cfg.BibliographyPath(root)
	}

	reg, err := openRegistry(root)
	if err != nil {
		exitWithError(ExitError, "opening citation store: %v", err)
	}
	defer reg.Close()

	entries, err := reg.All()
	if err != nil {
		exitWithError(ExitError, "reading citations: %v", err)
	}

	if err := bibtex.WriteFile(path, entries); err != nil {
		exitWithError(exitCodeFor(err), "writing bibliography: %v", err)
	}

	if humanOutput {
		outputHuman("Wrote %d citation(s) to %s\n", len(entries), path)
	} else {
		outputJSON(ExportResponse{
			Status:  "exported",
			Path:    path,
			Entries: len(entries),
		})
	}

	return nil
}
