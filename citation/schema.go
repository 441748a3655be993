package citation

// requiredField pairs a field name with a presence check, forming the
// per-kind required-field schema that Validate walks.
type requiredField struct {
	name    string
	present func(*Entry) bool
}

// commonRequired applies to every kind.
var commonRequired = []requiredField{
	{"author", func(e *Entry) bool { return len(e.Author) > 0 }},
	{"title", func(e *Entry) bool { return e.Title != "" }},
	{"year", func(e *Entry) bool { return e.Year != 0 }},
}

// kindRequired lists the variant-specific required fields. Article's
// pages-or-article-number alternative and Thesis's thesis_type literal
// check are handled separately in Validate.
var kindRequired = map[Kind][]requiredField{
	KindArticle: {
		{"journal", func(e *Entry) bool { return e.Journal != "" }},
		{"volume", func(e *Entry) bool { return e.Volume != 0 }},
	},
	KindBook: {
		{"publisher", func(e *Entry) bool { return e.Publisher != "" }},
	},
	KindInProceedings: {
		{"booktitle", func(e *Entry) bool { return e.BookTitle != "" }},
	},
	KindTechReport: {
		{"institution", func(e *Entry) bool { return e.Institution != "" }},
	},
	KindThesis: {
		{"school", func(e *Entry) bool { return e.School != "" }},
		{"thesis_type", func(e *Entry) bool { return e.ThesisType != "" }},
	},
	KindSoftware: nil,
	KindMisc:     nil,
}

// Validate checks the required-field schema for the entry's kind. It returns
// a *ValidationError naming the variant and the first missing or malformed
// field, or nil if the entry is valid. Constructors and the parsers run the
// same gate, so a valid entry is valid regardless of how it was built.
func (e *Entry) Validate() error {
	if !e.Kind.Valid() {
		return &ValidationError{Kind: e.Kind, Field: "kind", Reason: "unknown citation kind"}
	}

	for _, f := range commonRequired {
		if !f.present(e) {
			return missingField(e.Kind, f.name)
		}
	}
	for _, name := range e.Author {
		if name == "" {
			return &ValidationError{Kind: e.Kind, Field: "author", Reason: "author names must be non-empty"}
		}
	}

	for _, f := range kindRequired[e.Kind] {
		if !f.present(e) {
			return missingField(e.Kind, f.name)
		}
	}

	switch e.Kind {
	case KindArticle:
		if e.Pages == "" && e.ArticleNumber == "" {
			return &ValidationError{
				Kind:   KindArticle,
				Field:  "pages",
				Reason: "requires 'pages' or 'article_number'; both are unset",
			}
		}
	case KindThesis:
		if e.ThesisType != PhD && e.ThesisType != Masters {
			return &ValidationError{
				Kind:   KindThesis,
				Field:  "thesis_type",
				Reason: "must be 'phd' or 'masters'; got '" + string(e.ThesisType) + "'",
			}
		}
	}

	return nil
}
