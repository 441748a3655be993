package bibtex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/citekit/citekit/citation"
	"github.com/citekit/citekit/citekey"
)

// Compose deduplicates the collection, assigns unique keys, and joins the
// serialized records with exactly one blank line between them. The returned
// body ends with a newline; an empty collection yields an empty body. Key
// assignment mutates the retained entries, per citekey.AssignUnique.
func Compose(entries []*citation.Entry) (string, error) {
	retained := citekey.AssignUnique(entries)
	if len(retained) == 0 {
		return "", nil
	}

	records := make([]string, 0, len(retained))
	for _, e := range retained {
		record, err := Format(e)
		if err != nil {
			return "", err
		}
		records = append(records, record)
	}

	return strings.Join(records, "\n\n") + "\n", nil
}

// WriteFile composes the bibliography and writes it to path atomically
// (temp file in the same directory, then rename).
func WriteFile(path string, entries []*citation.Entry) error {
	body, err := Compose(entries)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*.bib")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.WriteString(body); err != nil {
		tmp.Close()
		return fmt.Errorf("writing bibliography: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}
