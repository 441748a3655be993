package main

import (
	"fmt"

	"github.com/citekit/citekit/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  cbib config                         # Show all config
  cbib config bibliography            # Get specific value
  cbib config bibliography refs.bib   # Set value

Keys:
  bibliography  Output path for the exported .bib file
  default-app   App recorded on entries added without one
  contact       Mailto for polite doi.org requests`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := requireWorkspace()
	cfg := loadConfig(root)

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			outputHuman("bibliography: %s\n", cfg.Bibliography)
			outputHuman("default-app:  %s\n", cfg.DefaultApp)
			outputHuman("contact:      %s\n", cfg.Contact)
		} else {
			outputJSON(ConfigResponse{
				Bibliography: cfg.Bibliography,
				DefaultApp:   cfg.DefaultApp,
				Contact:      cfg.Contact,
			})
		}
		return nil
	}

	key := args[0]
	field := configField(cfg, key)
	if field == nil {
		exitWithError(ExitError, "unknown config key: %s (valid: bibliography, default-app, contact)", key)
	}

	// One arg: get specific value
	if len(args) == 1 {
		if humanOutput {
			fmt.Println(*field)
		} else {
			outputJSON(map[string]string{key: *field})
		}
		return nil
	}

	// Two args: set value
	*field = args[1]
	if err := cfg.Save(root); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}

	if humanOutput {
		outputHuman("Set %s to %s\n", key, args[1])
	} else {
		outputJSON(UpdateResponse{
			Status: "updated",
			Key:    key,
			Value:  args[1],
		})
	}

	return nil
}

func configField(cfg *config.Config, key string) *string {
	switch key {
	case "bibliography":
		return &cfg.Bibliography
	case "default-app":
		return &cfg.DefaultApp
	case "contact":
		return &cfg.Contact
	default:
		return nil
	}
}
