// Package citation defines structured bibliographic citations that plugins
// attach to a unit of software and a host later collects into a bibliography.
package citation

// Kind identifies one of the supported citation variants.
type Kind string

// Supported citation kinds. A Thesis serializes as @phdthesis or
// @mastersthesis depending on its ThesisType; the kind itself is "thesis".
const (
	KindArticle       Kind = "article"
	KindBook          Kind = "book"
	KindInProceedings Kind = "inproceedings"
	KindTechReport    Kind = "techreport"
	KindThesis        Kind = "thesis"
	KindSoftware      Kind = "software"
	KindMisc          Kind = "misc"
)

// displayNames maps kinds to the variant names used in error messages.
var displayNames = map[Kind]string{
	KindArticle:       "Article",
	KindBook:          "Book",
	KindInProceedings: "InProceedings",
	KindTechReport:    "TechReport",
	KindThesis:        "Thesis",
	KindSoftware:      "Software",
	KindMisc:          "Misc",
}

// Name returns the variant name for display ("Article", "TechReport", ...).
func (k Kind) Name() string {
	if name, ok := displayNames[k]; ok {
		return name
	}
	return string(k)
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	_, ok := displayNames[k]
	return ok
}

// ThesisType selects the BibTeX type tag a Thesis entry serializes under.
type ThesisType string

const (
	PhD     ThesisType = "phd"
	Masters ThesisType = "masters"
)
