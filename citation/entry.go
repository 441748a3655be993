package citation

// Entry is one structured citation, tagged with a Kind. The shared base
// fields (Author, Title, Year, DOI, URL, Note) apply to every kind; the
// remaining fields only apply to the kinds whose constructors accept them.
//
// Key is an assigned identity, not bibliographic content: it is excluded
// from Equal and Fingerprint and may be rewritten by citekey.AssignUnique
// or by the owning host. App names the originating plugin and is likewise
// excluded; it never appears in BibTeX output. All other fields should be
// treated as immutable after construction — mutating them invalidates any
// fingerprint-based deduplication already performed.
type Entry struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key,omitempty"`

	// Common bibliographic fields
	Author []string `json:"author"` // "Surname, Given", order preserved
	Title  string   `json:"title"`
	Year   int      `json:"year"`
	DOI    string   `json:"doi,omitempty"`
	URL    string   `json:"url,omitempty"`
	Note   string   `json:"note,omitempty"`

	// Host metadata, not bibliographic content
	App string `json:"app,omitempty"`

	// Article
	Journal       string `json:"journal,omitempty"`
	Volume        int    `json:"volume,omitempty"`
	Number        int    `json:"number,omitempty"` // issue number
	Pages         string `json:"pages,omitempty"`
	ArticleNumber string `json:"article_number,omitempty"`

	// Book / InProceedings / Software
	Publisher string   `json:"publisher,omitempty"`
	Edition   string   `json:"edition,omitempty"`
	Editor    []string `json:"editor,omitempty"`
	BookTitle string   `json:"booktitle,omitempty"`

	// TechReport ("TR-42" style identifiers, distinct from Number)
	Institution  string `json:"institution,omitempty"`
	ReportNumber string `json:"report_number,omitempty"`

	// Thesis
	School     string     `json:"school,omitempty"`
	ThesisType ThesisType `json:"thesis_type,omitempty"`

	// Software
	Version string `json:"version,omitempty"`
	License string `json:"license,omitempty"`
}

// Option sets an optional field on an Entry under construction.
type Option func(*Entry)

// WithKey supplies an explicit citation key.
func WithKey(key string) Option { return func(e *Entry) { e.Key = key } }

// WithApp records the originating plugin's name.
func WithApp(app string) Option { return func(e *Entry) { e.App = app } }

// WithDOI sets the DOI.
func WithDOI(doi string) Option { return func(e *Entry) { e.DOI = doi } }

// WithURL sets the URL.
func WithURL(url string) Option { return func(e *Entry) { e.URL = url } }

// WithNote sets a free-form note.
func WithNote(note string) Option { return func(e *Entry) { e.Note = note } }

// WithPages sets the page range ("1--10") or single page ("7765").
func WithPages(pages string) Option { return func(e *Entry) { e.Pages = pages } }

// WithArticleNumber sets an article number ("e42") for journals without pages.
func WithArticleNumber(n string) Option { return func(e *Entry) { e.ArticleNumber = n } }

// WithNumber sets an Article's issue number.
func WithNumber(n int) Option { return func(e *Entry) { e.Number = n } }

// WithPublisher sets the publisher on InProceedings or Software entries.
func WithPublisher(p string) Option { return func(e *Entry) { e.Publisher = p } }

// WithEdition sets a Book's edition ("3rd").
func WithEdition(ed string) Option { return func(e *Entry) { e.Edition = ed } }

// WithEditor sets the editor list, each name in "Surname, Given" form.
func WithEditor(editors []string) Option { return func(e *Entry) { e.Editor = editors } }

// WithReportNumber sets a TechReport's report identifier ("TR-42").
func WithReportNumber(n string) Option { return func(e *Entry) { e.ReportNumber = n } }

// WithVersion sets a Software entry's version.
func WithVersion(v string) Option { return func(e *Entry) { e.Version = v } }

// WithLicense sets a Software entry's license.
func WithLicense(l string) Option { return func(e *Entry) { e.License = l } }

// newEntry applies options to a base entry and runs the validation gate.
// No entry is observable in a partially-valid state: constructors either
// return a valid entry or a *ValidationError.
func newEntry(base Entry, opts []Option) (*Entry, error) {
	e := base
	for _, opt := range opts {
		opt(&e)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

// NewArticle creates an @article entry. Either pages or an article number
// must be supplied via options.
func NewArticle(author []string, title string, year int, journal string, volume int, opts ...Option) (*Entry, error) {
	return newEntry(Entry{
		Kind:    KindArticle,
		Author:  author,
		Title:   title,
		Year:    year,
		Journal: journal,
		Volume:  volume,
	}, opts)
}

// NewBook creates a @book entry.
func NewBook(author []string, title string, year int, publisher string, opts ...Option) (*Entry, error) {
	return newEntry(Entry{
		Kind:      KindBook,
		Author:    author,
		Title:     title,
		Year:      year,
		Publisher: publisher,
	}, opts)
}

// NewInProceedings creates an @inproceedings entry.
func NewInProceedings(author []string, title string, year int, booktitle string, opts ...Option) (*Entry, error) {
	return newEntry(Entry{
		Kind:      KindInProceedings,
		Author:    author,
		Title:     title,
		Year:      year,
		BookTitle: booktitle,
	}, opts)
}

// NewTechReport creates a @techreport entry.
func NewTechReport(author []string, title string, year int, institution string, opts ...Option) (*Entry, error) {
	return newEntry(Entry{
		Kind:        KindTechReport,
		Author:      author,
		Title:       title,
		Year:        year,
		Institution: institution,
	}, opts)
}

// NewThesis creates a @phdthesis or @mastersthesis entry depending on
// thesisType, which must be PhD or Masters.
func NewThesis(author []string, title string, year int, school string, thesisType ThesisType, opts ...Option) (*Entry, error) {
	return newEntry(Entry{
		Kind:       KindThesis,
		Author:     author,
		Title:      title,
		Year:       year,
		School:     school,
		ThesisType: thesisType,
	}, opts)
}

// NewSoftware creates an @software entry.
func NewSoftware(author []string, title string, year int, opts ...Option) (*Entry, error) {
	return newEntry(Entry{
		Kind:   KindSoftware,
		Author: author,
		Title:  title,
		Year:   year,
	}, opts)
}

// NewMisc creates a @misc entry.
func NewMisc(author []string, title string, year int, opts ...Option) (*Entry, error) {
	return newEntry(Entry{
		Kind:   KindMisc,
		Author: author,
		Title:  title,
		Year:   year,
	}, opts)
}
