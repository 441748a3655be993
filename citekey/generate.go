// Package citekey derives citation keys and resolves key collisions across
// citation collections contributed independently by many plugins.
package citekey

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/citekit/citekit/citation"
)

// Generate derives the default key "{Surname}.{year}" from an entry's first
// author and year. The surname is cleaned to ASCII letters only and
// title-cased. Pure function of author[0] and year: the same entry always
// yields the same key, which AssignUnique relies on for group stability.
func Generate(e *citation.Entry) string {
	surname := cleanSurname(citation.Surname(e.Author[0]))
	return fmt.Sprintf("%s.%d", surname, e.Year)
}

// cleanSurname strips non-ASCII characters and whitespace, then title-cases
// the result (first letter upper, remainder lower).
func cleanSurname(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r > unicode.MaxASCII || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	cleaned := b.String()
	if cleaned == "" {
		return ""
	}
	return strings.ToUpper(cleaned[:1]) + strings.ToLower(cleaned[1:])
}
