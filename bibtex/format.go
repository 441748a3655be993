// Package bibtex maps citations to and from the textual bibliography record
// format, and composes many records into a bibliography file body.
package bibtex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/citekit/citekit/citation"
)

// TypeTag returns the BibTeX type tag an entry serializes under. Thesis
// entries map to phdthesis or mastersthesis; ThesisType itself is never
// written as a field.
func TypeTag(e *citation.Entry) string {
	if e.Kind == citation.KindThesis {
		if e.ThesisType == citation.Masters {
			return "mastersthesis"
		}
		return "phdthesis"
	}
	return string(e.Kind)
}

// Format serializes one entry as a single BibTeX record. Field order is
// fixed per kind, so equal entries always serialize to byte-identical text.
// The entry's key must be non-empty: serializing a keyless entry is a
// caller error reported as a *citation.ValidationError. App is never
// emitted.
func Format(e *citation.Entry) (string, error) {
	if e.Key == "" {
		return "", &citation.ValidationError{
			Kind:   e.Kind,
			Field:  "key",
			Reason: "cannot serialize an entry with no key",
		}
	}
	if err := e.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", TypeTag(e), e.Key)
	writeField(&b, "author", joinNames(e.Author))
	writeField(&b, "title", e.Title)

	switch e.Kind {
	case citation.KindArticle:
		writeField(&b, "journal", e.Journal)
		writeField(&b, "year", strconv.Itoa(e.Year))
		writeField(&b, "volume", strconv.Itoa(e.Volume))
		if e.Number != 0 {
			writeField(&b, "number", strconv.Itoa(e.Number))
		}
		if e.Pages != "" {
			writeField(&b, "pages", e.Pages)
		}
		if e.ArticleNumber != "" {
			writeField(&b, "article_number", e.ArticleNumber)
		}
	case citation.KindBook:
		writeField(&b, "publisher", e.Publisher)
		writeField(&b, "year", strconv.Itoa(e.Year))
		if e.Edition != "" {
			writeField(&b, "edition", e.Edition)
		}
		if len(e.Editor) > 0 {
			writeField(&b, "editor", joinNames(e.Editor))
		}
	case citation.KindInProceedings:
		writeField(&b, "booktitle", e.BookTitle)
		writeField(&b, "year", strconv.Itoa(e.Year))
		if e.Pages != "" {
			writeField(&b, "pages", e.Pages)
		}
		if e.Publisher != "" {
			writeField(&b, "publisher", e.Publisher)
		}
		if len(e.Editor) > 0 {
			writeField(&b, "editor", joinNames(e.Editor))
		}
	case citation.KindTechReport:
		writeField(&b, "institution", e.Institution)
		writeField(&b, "year", strconv.Itoa(e.Year))
		if e.ReportNumber != "" {
			writeField(&b, "number", e.ReportNumber)
		}
	case citation.KindThesis:
		writeField(&b, "school", e.School)
		writeField(&b, "year", strconv.Itoa(e.Year))
	case citation.KindSoftware:
		writeField(&b, "year", strconv.Itoa(e.Year))
		if e.Publisher != "" {
			writeField(&b, "publisher", e.Publisher)
		}
		if e.Version != "" {
			writeField(&b, "version", e.Version)
		}
		if e.License != "" {
			writeField(&b, "license", e.License)
		}
	case citation.KindMisc:
		writeField(&b, "year", strconv.Itoa(e.Year))
	}

	if e.DOI != "" {
		writeField(&b, "doi", e.DOI)
	}
	if e.URL != "" {
		writeField(&b, "url", e.URL)
	}
	if e.Note != "" {
		writeField(&b, "note", e.Note)
	}
	b.WriteString("}")

	return b.String(), nil
}

// writeField emits one "  name      = {value}," line. Names shorter than
// ten characters are padded so values align.
func writeField(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "  %-10s= {%s},\n", name, value)
}

// joinNames renders an author or editor list in BibTeX form:
// "Surname, Given and Surname, Given".
func joinNames(names []string) string {
	return strings.Join(names, " and ")
}
