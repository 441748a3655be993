package citation

import (
	"encoding/json"
	"fmt"
	"os"
)

// ToJSON encodes a collection of citations as JSON for the plugin-to-host
// handoff. Unlike BibTeX output, the JSON form preserves Key and App.
func ToJSON(entries []*Entry) ([]byte, error) {
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encoding citations: %w", err)
	}
	return data, nil
}

// FromJSON decodes a collection of citations produced by ToJSON. Every
// decoded entry is run through the same validation gate as direct
// construction; the first invalid entry aborts the decode.
func FromJSON(data []byte) ([]*Entry, error) {
	var entries []*Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing citations: %w", err)
	}
	for i, e := range entries {
		if e == nil {
			return nil, fmt.Errorf("entry %d: null citation", i)
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return entries, nil
}

// WriteJSONFile writes a citation collection to path as JSON.
func WriteJSONFile(path string, entries []*Entry) error {
	data, err := ToJSON(entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing citations: %w", err)
	}
	return nil
}

// LoadJSONFile reads a citation collection written by WriteJSONFile.
func LoadJSONFile(path string) ([]*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading citations: %w", err)
	}
	return FromJSON(data)
}
