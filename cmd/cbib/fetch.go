package main

import (
	"context"
	"errors"
	"time"

	"github.com/citekit/citekit/bibtex"
	"github.com/citekit/citekit/internal/doiorg"
	"github.com/citekit/citekit/internal/pdfscan"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	fetchDOI     string
	fetchPDF     string
	fetchApp     string
	fetchTimeout time.Duration
)

func init() {
	fetchCmd.Flags().StringVar(&fetchDOI, "doi", "", "DOI to fetch")
	fetchCmd.Flags().StringVar(&fetchPDF, "pdf", "", "PDF file to extract a DOI from")
	fetchCmd.Flags().StringVar(&fetchApp, "app", "", "Tool or source the citation belongs to")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", doiorg.DefaultTimeout, "Fetch timeout")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a citation from doi.org",
	Long: `Fetch a citation record from doi.org and add it to the store.

The DOI comes from --doi, or from the front matter of a PDF given with
--pdf. Set a contact email in config (or CBIB_CONTACT) to use doi.org's
polite pool.`,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	root := requireWorkspace()
	cfg := loadConfig(root)

	// .env may carry CBIB_CONTACT; missing files are fine.
	godotenv.Load()

	doi := fetchDOI
	if doi == "" && fetchPDF != "" {
		extracted, err := pdfscan.ExtractDOI(fetchPDF)
		if err != nil {
			exitWithError(ExitError, "scanning PDF: %v", err)
		}
		if extracted == "" {
			exitWithError(ExitDataError, "no DOI found in %s", fetchPDF)
		}
		doi = extracted
	}
	if doi == "" {
		exitWithError(ExitError, "either --doi or --pdf is required")
	}

	contact := cfg.Contact
	if env := envContact(); env != "" {
		contact = env
	}

	client := doiorg.NewClient(doiorg.WithContact(contact))
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	record, err := client.FetchBibTeX(ctx, doi)
	if err != nil {
		if errors.Is(err, doiorg.ErrNotFound) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	entry, err := bibtex.Parse(record)
	if err != nil {
		exitWithError(exitCodeFor(err), "decoding doi.org record: %v", err)
	}
	if entry.App == "" {
		app := fetchApp
		if app == "" {
			app = cfg.DefaultApp
		}
		entry.App = app
	}

	reg, err := openRegistry(root)
	if err != nil {
		exitWithError(ExitError, "opening citation store: %v", err)
	}
	defer reg.Close()

	added, err := reg.Add(entry)
	if err != nil {
		exitWithError(ExitError, "storing citation: %v", err)
	}

	if humanOutput {
		if added {
			outputHuman("Added %s\n", entry.Key)
		} else {
			outputHuman("Already in store: %s\n", entry.Key)
		}
	} else {
		outputJSON(FetchResponse{
			Status: "fetched",
			DOI:    doiorg.NormalizeDOI(doi),
			Key:    entry.Key,
			Added:  added,
		})
	}

	return nil
}
