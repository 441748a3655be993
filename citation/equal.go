package citation

import (
	"slices"
	"strconv"
	"strings"
)

// Equal reports whether two entries carry the same bibliographic content.
// Key and App are excluded: Key is assigned identity, App is host metadata.
func (e *Entry) Equal(other *Entry) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	return e.Kind == other.Kind &&
		slices.Equal(e.Author, other.Author) &&
		e.Title == other.Title &&
		e.Year == other.Year &&
		e.DOI == other.DOI &&
		e.URL == other.URL &&
		e.Note == other.Note &&
		e.Journal == other.Journal &&
		e.Volume == other.Volume &&
		e.Number == other.Number &&
		e.Pages == other.Pages &&
		e.ArticleNumber == other.ArticleNumber &&
		e.Publisher == other.Publisher &&
		e.Edition == other.Edition &&
		slices.Equal(e.Editor, other.Editor) &&
		e.BookTitle == other.BookTitle &&
		e.Institution == other.Institution &&
		e.ReportNumber == other.ReportNumber &&
		e.School == other.School &&
		e.ThesisType == other.ThesisType &&
		e.Version == other.Version &&
		e.License == other.License
}

// Field and list separators for fingerprints. Neither occurs in
// bibliographic text.
const (
	fieldSep = "\x1f"
	listSep  = "\x1e"
)

// Fingerprint returns a digest of the entry's content fields, following the
// same exclusion set as Equal: entries that compare Equal produce identical
// fingerprints. Suitable as a map key for value-level deduplication.
func (e *Entry) Fingerprint() string {
	parts := []string{
		string(e.Kind),
		strings.Join(e.Author, listSep),
		e.Title,
		strconv.Itoa(e.Year),
		e.DOI,
		e.URL,
		e.Note,
		e.Journal,
		strconv.Itoa(e.Volume),
		strconv.Itoa(e.Number),
		e.Pages,
		e.ArticleNumber,
		e.Publisher,
		e.Edition,
		strings.Join(e.Editor, listSep),
		e.BookTitle,
		e.Institution,
		e.ReportNumber,
		e.School,
		string(e.ThesisType),
		e.Version,
		e.License,
	}
	return strings.Join(parts, fieldSep)
}
