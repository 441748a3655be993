package citation

import (
	"path/filepath"
	"strings"
	"testing"
)

// allKinds returns one populated entry of each kind.
func allKinds(t *testing.T) []*Entry {
	t.Helper()

	article, err := NewArticle([]string{"Huttley, Gavin"}, "diverse-seq", 2025,
		"JOSS", 10, WithPages("7765"), WithKey("custom.key"), WithApp("diverse-seq"))
	if err != nil {
		t.Fatal(err)
	}
	book, err := NewBook([]string{"Knuth, Donald"}, "TAOCP", 1997,
		"Addison-Wesley", WithEdition("3rd"), WithEditor([]string{"Smith, Jane"}))
	if err != nil {
		t.Fatal(err)
	}
	proc, err := NewInProceedings([]string{"Doe, John"}, "A Paper", 2023,
		"Proceedings of Foo", WithPages("1--10"), WithPublisher("ACM"))
	if err != nil {
		t.Fatal(err)
	}
	report, err := NewTechReport([]string{"Turing, Alan"}, "On Computable Numbers", 1936,
		"Cambridge", WithReportNumber("TR-42"))
	if err != nil {
		t.Fatal(err)
	}
	thesis, err := NewThesis([]string{"Student, Alice"}, "My Thesis", 2022, "MIT", PhD)
	if err != nil {
		t.Fatal(err)
	}
	software, err := NewSoftware([]string{"Dev, Jane"}, "my-tool", 2024,
		WithVersion("1.0.0"), WithLicense("MIT"))
	if err != nil {
		t.Fatal(err)
	}
	misc, err := NewMisc([]string{"Smith, A"}, "Something", 2024, WithDOI("10.1234/misc"))
	if err != nil {
		t.Fatal(err)
	}

	return []*Entry{article, book, proc, report, thesis, software, misc}
}

func TestJSONRoundTrip(t *testing.T) {
	originals := allKinds(t)

	data, err := ToJSON(originals)
	if err != nil {
		t.Fatalf("ToJSON() error: %v", err)
	}
	restored, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON() error: %v", err)
	}

	if len(restored) != len(originals) {
		t.Fatalf("restored %d entries, want %d", len(restored), len(originals))
	}
	for i, orig := range originals {
		got := restored[i]
		if got.Kind != orig.Kind {
			t.Errorf("entry %d: kind = %q, want %q", i, got.Kind, orig.Kind)
		}
		if !got.Equal(orig) {
			t.Errorf("entry %d (%s): round-trip changed content", i, orig.Kind)
		}
		// Unlike BibTeX output, JSON preserves key and app.
		if got.Key != orig.Key {
			t.Errorf("entry %d: key = %q, want %q", i, got.Key, orig.Key)
		}
		if got.App != orig.App {
			t.Errorf("entry %d: app = %q, want %q", i, got.App, orig.App)
		}
	}
}

func TestFromJSON_ValidatesEntries(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown kind", `[{"kind":"nonexistent","author":["A, B"],"title":"T","year":2024}]`},
		{"missing required field", `[{"kind":"article","author":["A, B"],"title":"T","year":2024}]`},
		{"missing year", `[{"kind":"misc","author":["A, B"],"title":"T"}]`},
		{"not json", `{{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromJSON([]byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestJSONFileRoundTrip(t *testing.T) {
	originals := allKinds(t)
	path := filepath.Join(t.TempDir(), "citations.json")

	if err := WriteJSONFile(path, originals); err != nil {
		t.Fatalf("WriteJSONFile() error: %v", err)
	}
	restored, err := LoadJSONFile(path)
	if err != nil {
		t.Fatalf("LoadJSONFile() error: %v", err)
	}

	if len(restored) != len(originals) {
		t.Fatalf("restored %d entries, want %d", len(restored), len(originals))
	}
	for i := range originals {
		if !restored[i].Equal(originals[i]) {
			t.Errorf("entry %d changed across the file round-trip", i)
		}
	}
}

func TestToJSON_AbsentOptionalsOmitted(t *testing.T) {
	e, err := NewMisc([]string{"Smith, A"}, "Something", 2024)
	if err != nil {
		t.Fatal(err)
	}
	data, err := ToJSON([]*Entry{e})
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"doi", "url", "note", "app", "key"} {
		if strings.Contains(string(data), `"`+field+`"`) {
			t.Errorf("unset optional field %q should be omitted, got %s", field, data)
		}
	}
}
