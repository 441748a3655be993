package main

import (
	"os"

	"github.com/citekit/citekit/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new citation workspace",
	Long: `Initialize a new citation workspace in the current directory.

Creates:
  .cbib/
  ├── config.yml      # Default config
  └── citations.db    # SQLite citation store`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, exitCode := getStartDir()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	if config.IsWorkspace(root) {
		exitWithError(ExitError, "directory already contains a cbib workspace")
	}

	if err := os.MkdirAll(config.CbibPath(root), 0755); err != nil {
		exitWithError(ExitError, "creating .cbib directory: %v", err)
	}

	cfg := &config.Config{
		Bibliography: config.DefaultBibliography,
	}
	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "creating config.yml: %v", err)
	}

	reg, err := openRegistry(root)
	if err != nil {
		exitWithError(ExitError, "creating citation store: %v", err)
	}
	reg.Close()

	if humanOutput {
		outputHuman("Initialized cbib workspace in %s\n", root)
	} else {
		outputJSON(StatusResponse{
			Status: "initialized",
			Path:   root,
		})
	}

	return nil
}
