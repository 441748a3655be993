package main

import (
	"github.com/spf13/cobra"
)

var listApp string

func init() {
	listCmd.Flags().StringVar(&listApp, "app", "", "Only list citations for this app")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored citations",
	Long:  `List stored citations as one-line summaries, in insertion order.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	root := requireWorkspace()

	reg, err := openRegistry(root)
	if err != nil {
		exitWithError(ExitError, "opening citation store: %v", err)
	}
	defer reg.Close()

	entries, err := reg.All()
	if err != nil {
		exitWithError(ExitError, "reading citations: %v", err)
	}

	results := make([]ListEntry, 0, len(entries))
	for _, e := range entries {
		app, summary := e.Summary()
		if listApp != "" && app != listApp {
			continue
		}
		results = append(results, ListEntry{App: app, Summary: summary})
	}

	if humanOutput {
		for _, r := range results {
			if r.App != "" {
				outputHuman("%-12s %s\n", r.App, r.Summary)
			} else {
				outputHuman("%s\n", r.Summary)
			}
		}
		return nil
	}

	return outputJSON(results)
}
