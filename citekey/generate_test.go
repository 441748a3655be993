package citekey

import (
	"testing"

	"github.com/citekit/citekit/citation"
)

func mustMisc(t *testing.T, authors []string, year int) *citation.Entry {
	t.Helper()
	e, err := citation.NewMisc(authors, "A Title", year)
	if err != nil {
		t.Fatalf("NewMisc() error: %v", err)
	}
	return e
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		year    int
		want    string
	}{
		{"comma form", []string{"Huttley, Gavin", "Caley, Katherine"}, 2025, "Huttley.2025"},
		{"first last form", []string{"Jane Smith"}, 2024, "Smith.2024"},
		{"mononym", []string{"Aristotle"}, 2024, "Aristotle.2024"},
		{"uppercase surname normalized", []string{"MCARTHUR, Robert"}, 2023, "Mcarthur.2023"},
		{"non-ascii stripped", []string{"Müller, Hans"}, 2022, "Mller.2022"},
		{"whitespace in surname stripped", []string{"Van Der Berg, Jan"}, 2021, "Vanderberg.2021"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustMisc(t, tt.authors, tt.year)
			if got := Generate(e); got != tt.want {
				t.Errorf("Generate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	e := mustMisc(t, []string{"Huttley, Gavin"}, 2025)
	first := Generate(e)
	for i := 0; i < 5; i++ {
		if got := Generate(e); got != first {
			t.Fatalf("Generate() not deterministic: %q then %q", first, got)
		}
	}
}
