package citation

import (
	"fmt"
	"strings"
)

// summaryTitleLen is the rune budget for titles in list summaries.
const summaryTitleLen = 50

// Surname returns the surname component of an author name: the text before
// the first comma in "Surname, Given" form, otherwise the last
// whitespace-delimited token.
func Surname(name string) string {
	if idx := strings.Index(name, ","); idx >= 0 {
		return strings.TrimSpace(name[:idx])
	}
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// Summary returns the originating app name (empty if unset) and a one-line
// citation summary of the form "Surname et al. 2025 Title…" for host UI
// listings. Titles longer than 50 runes are truncated with an ellipsis.
func (e *Entry) Summary() (app, summary string) {
	var auth string
	if len(e.Author) > 0 {
		auth = Surname(e.Author[0])
		if len(e.Author) > 1 {
			auth += " et al."
		}
	}
	return e.App, fmt.Sprintf("%s %d %s", auth, e.Year, truncateTitle(e.Title))
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= summaryTitleLen {
		return title
	}
	return string(runes[:summaryTitleLen]) + "…"
}
