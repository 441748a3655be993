package bibtex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/citekit/citekit/citation"
)

// ParseError reports input text that does not conform to the expected
// record grammar: wrong record count, unbalanced delimiters, an
// unrecognized type tag, or a non-numeric value where an integer is
// expected.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return "parsing bibtex: " + e.Msg
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// recordStartRE matches the opening "@type{" of a record.
var recordStartRE = regexp.MustCompile(`@(\w+)\s*\{`)

// fieldStartRE matches the "name = " prefix of a field assignment.
var fieldStartRE = regexp.MustCompile(`(?m)^\s*(\w+)\s*=\s*`)

// kindByTag maps lowercase type tags to citation kinds. Both thesis tags
// map to KindThesis; the tag decides ThesisType.
var kindByTag = map[string]citation.Kind{
	"article":       citation.KindArticle,
	"book":          citation.KindBook,
	"inproceedings": citation.KindInProceedings,
	"techreport":    citation.KindTechReport,
	"phdthesis":     citation.KindThesis,
	"mastersthesis": citation.KindThesis,
	"software":      citation.KindSoftware,
	"misc":          citation.KindMisc,
}

// rawRecord is one extracted "@tag{key, body}" before field parsing.
type rawRecord struct {
	tag  string
	key  string
	body string
}

// Parse decodes text containing exactly one BibTeX record into a validated
// entry. The key is taken verbatim from the record; unknown fields are
// ignored. Grammar violations return a *ParseError; a record missing a
// required field returns the same *citation.ValidationError as direct
// construction.
func Parse(raw string) (*citation.Entry, error) {
	records, err := extractRecords(raw)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, parseErrorf("no bibliography record found in input")
	}
	if len(records) > 1 {
		return nil, parseErrorf("multiple records found; expected exactly one")
	}

	rec := records[0]
	kind, ok := kindByTag[strings.ToLower(rec.tag)]
	if !ok {
		return nil, parseErrorf("unsupported record type @%s", strings.ToLower(rec.tag))
	}

	return buildEntry(kind, strings.ToLower(rec.tag), rec.key, parseFields(rec.body))
}

// ParseAll decodes every record in the input, in order. Bibliography files
// with zero records yield an empty slice, not an error.
func ParseAll(raw string) ([]*citation.Entry, error) {
	records, err := extractRecords(raw)
	if err != nil {
		return nil, err
	}

	entries := make([]*citation.Entry, 0, len(records))
	for _, rec := range records {
		kind, ok := kindByTag[strings.ToLower(rec.tag)]
		if !ok {
			return nil, parseErrorf("unsupported record type @%s", strings.ToLower(rec.tag))
		}
		e, err := buildEntry(kind, strings.ToLower(rec.tag), rec.key, parseFields(rec.body))
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// extractRecords scans the input for records, pairing each "@tag{" opener
// with its balancing close brace.
func extractRecords(raw string) ([]rawRecord, error) {
	var records []rawRecord
	for _, m := range recordStartRE.FindAllStringSubmatchIndex(raw, -1) {
		tag := raw[m[2]:m[3]]
		start := m[1]

		depth := 1
		pos := start
		for pos < len(raw) && depth > 0 {
			switch raw[pos] {
			case '{':
				depth++
			case '}':
				depth--
			}
			pos++
		}
		if depth != 0 {
			return nil, parseErrorf("unbalanced braces in record @%s", tag)
		}

		body := raw[start : pos-1]
		key := body
		if comma := strings.Index(body, ","); comma >= 0 {
			key = body[:comma]
			body = body[comma+1:]
		} else {
			body = ""
		}
		records = append(records, rawRecord{
			tag:  tag,
			key:  strings.TrimSpace(key),
			body: body,
		})
	}
	return records, nil
}

// parseFields extracts "name = value" pairs from a record body, lowercasing
// names. Values may be brace-delimited (with nesting), quoted, or bare.
func parseFields(body string) map[string]string {
	matches := fieldStartRE.FindAllStringSubmatchIndex(body, -1)
	fields := make(map[string]string, len(matches))
	for i, m := range matches {
		name := strings.ToLower(body[m[2]:m[3]])
		valStart := m[1]
		valEnd := len(body)
		if i+1 < len(matches) {
			valEnd = matches[i+1][0]
		}
		fields[name] = extractValue(body[valStart:valEnd])
	}
	return fields
}

// extractValue decodes a single field value.
func extractValue(raw string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(raw, "{"):
		depth := 0
		for i, ch := range raw {
			switch ch {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return raw[1:i]
				}
			}
		}
		return raw // unterminated; keep verbatim
	case strings.HasPrefix(raw, `"`):
		if end := strings.Index(raw[1:], `"`); end >= 0 {
			return raw[1 : end+1]
		}
		return raw
	default:
		return strings.TrimSpace(strings.TrimSuffix(raw, ","))
	}
}

// normalizeName puts a single parsed name into "Surname, Given" form where
// the shape is unambiguous: names already containing a comma are kept, an
// exact "First Last" token pair is swapped, and anything else (mononyms,
// multi-token surnames) is kept verbatim.
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if strings.Contains(name, ",") {
		return name
	}
	parts := strings.Fields(name)
	if len(parts) != 2 {
		return name
	}
	return parts[1] + ", " + parts[0]
}

// splitNames splits an author or editor value on the " and " delimiter and
// normalizes each name.
func splitNames(raw string) []string {
	var names []string
	for _, name := range strings.Split(raw, " and ") {
		names = append(names, normalizeName(name))
	}
	return names
}

// intField coerces a field value to an integer, returning 0 for an absent
// field and a *ParseError for non-numeric text.
func intField(fields map[string]string, name string) (int, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, parseErrorf("field '%s': expected an integer, got %q", name, raw)
	}
	return n, nil
}

// buildEntry constructs the parsed variant through the same constructors
// direct callers use, so post-parse validation is identical to §construction.
func buildEntry(kind citation.Kind, tag, key string, fields map[string]string) (*citation.Entry, error) {
	var author []string
	if raw, ok := fields["author"]; ok {
		author = splitNames(raw)
	}
	title := fields["title"]
	year, err := intField(fields, "year")
	if err != nil {
		return nil, err
	}

	opts := []citation.Option{citation.WithKey(key)}
	if v, ok := fields["doi"]; ok {
		opts = append(opts, citation.WithDOI(v))
	}
	if v, ok := fields["url"]; ok {
		opts = append(opts, citation.WithURL(v))
	}
	if v, ok := fields["note"]; ok {
		opts = append(opts, citation.WithNote(v))
	}

	switch kind {
	case citation.KindArticle:
		volume, err := intField(fields, "volume")
		if err != nil {
			return nil, err
		}
		number, err := intField(fields, "number")
		if err != nil {
			return nil, err
		}
		if number != 0 {
			opts = append(opts, citation.WithNumber(number))
		}
		if v, ok := fields["pages"]; ok {
			opts = append(opts, citation.WithPages(v))
		}
		if v, ok := fields["article_number"]; ok {
			opts = append(opts, citation.WithArticleNumber(v))
		}
		return citation.NewArticle(author, title, year, fields["journal"], volume, opts...)

	case citation.KindBook:
		if v, ok := fields["edition"]; ok {
			opts = append(opts, citation.WithEdition(v))
		}
		if v, ok := fields["editor"]; ok {
			opts = append(opts, citation.WithEditor(splitNames(v)))
		}
		return citation.NewBook(author, title, year, fields["publisher"], opts...)

	case citation.KindInProceedings:
		if v, ok := fields["pages"]; ok {
			opts = append(opts, citation.WithPages(v))
		}
		if v, ok := fields["publisher"]; ok {
			opts = append(opts, citation.WithPublisher(v))
		}
		if v, ok := fields["editor"]; ok {
			opts = append(opts, citation.WithEditor(splitNames(v)))
		}
		return citation.NewInProceedings(author, title, year, fields["booktitle"], opts...)

	case citation.KindTechReport:
		if v, ok := fields["number"]; ok {
			opts = append(opts, citation.WithReportNumber(v))
		}
		return citation.NewTechReport(author, title, year, fields["institution"], opts...)

	case citation.KindThesis:
		thesisType := citation.PhD
		if tag == "mastersthesis" {
			thesisType = citation.Masters
		}
		return citation.NewThesis(author, title, year, fields["school"], thesisType, opts...)

	case citation.KindSoftware:
		if v, ok := fields["publisher"]; ok {
			opts = append(opts, citation.WithPublisher(v))
		}
		if v, ok := fields["version"]; ok {
			opts = append(opts, citation.WithVersion(v))
		}
		if v, ok := fields["license"]; ok {
			opts = append(opts, citation.WithLicense(v))
		}
		return citation.NewSoftware(author, title, year, opts...)

	default:
		return citation.NewMisc(author, title, year, opts...)
	}
}
