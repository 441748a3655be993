package citekey

import (
	"fmt"
	"testing"

	"github.com/citekit/citekit/citation"
)

func smithEntry(t *testing.T, title string) *citation.Entry {
	t.Helper()
	e, err := citation.NewMisc([]string{"Smith, Jane"}, title, 2024)
	if err != nil {
		t.Fatalf("NewMisc() error: %v", err)
	}
	return e
}

func TestAssignUnique_CollisionGroup(t *testing.T) {
	entries := []*citation.Entry{
		smithEntry(t, "First Paper"),
		smithEntry(t, "Second Paper"),
		smithEntry(t, "Third Paper"),
	}

	got := AssignUnique(entries)
	if len(got) != 3 {
		t.Fatalf("retained %d entries, want 3", len(got))
	}

	want := []string{"Smith.2024.a", "Smith.2024.b", "Smith.2024.c"}
	for i, e := range got {
		if e.Key != want[i] {
			t.Errorf("entry %d key = %q, want %q", i, e.Key, want[i])
		}
		if e.Title != entries[i].Title {
			t.Errorf("entry %d out of input order: %q", i, e.Title)
		}
	}
}

func TestAssignUnique_DropsDuplicates(t *testing.T) {
	first := smithEntry(t, "First Paper")
	duplicate := smithEntry(t, "First Paper")
	duplicate.App = "other-plugin" // app is excluded from equality
	duplicate.Key = "explicit.key" // so is key

	entries := []*citation.Entry{
		first,
		smithEntry(t, "Second Paper"),
		smithEntry(t, "Third Paper"),
		duplicate,
	}

	got := AssignUnique(entries)
	if len(got) != 3 {
		t.Fatalf("retained %d entries, want 3", len(got))
	}
	for _, e := range got {
		if e == duplicate {
			t.Error("duplicate should have been dropped, not retained")
		}
	}
	if duplicate.Key != "explicit.key" {
		t.Errorf("dropped entry key mutated to %q", duplicate.Key)
	}
	if got[0] != first {
		t.Error("earliest occurrence should be the retained one")
	}
}

func TestAssignUnique_SingletonUnsuffixed(t *testing.T) {
	alone := smithEntry(t, "Only Paper")
	got := AssignUnique([]*citation.Entry{alone})
	if got[0].Key != "Smith.2024" {
		t.Errorf("singleton key = %q, want Smith.2024", got[0].Key)
	}
}

func TestAssignUnique_ExplicitKeyPreserved(t *testing.T) {
	explicit := smithEntry(t, "Pinned Paper")
	explicit.Key = "cogent3"
	generated := smithEntry(t, "Other Paper")

	got := AssignUnique([]*citation.Entry{explicit, generated})
	if got[0].Key != "cogent3" {
		t.Errorf("explicit key rewritten to %q", got[0].Key)
	}
	if got[1].Key != "Smith.2024" {
		t.Errorf("generated key = %q, want Smith.2024", got[1].Key)
	}
}

func TestAssignUnique_ExplicitKeyCollision(t *testing.T) {
	a := smithEntry(t, "First")
	a.Key = "shared"
	b := smithEntry(t, "Second")
	b.Key = "shared"

	got := AssignUnique([]*citation.Entry{a, b})
	if got[0].Key != "shared.a" || got[1].Key != "shared.b" {
		t.Errorf("colliding explicit keys = %q, %q; want shared.a, shared.b", got[0].Key, got[1].Key)
	}
}

func TestAssignUnique_Idempotent(t *testing.T) {
	entries := []*citation.Entry{
		smithEntry(t, "First Paper"),
		smithEntry(t, "Second Paper"),
		smithEntry(t, "Third Paper"),
	}
	entries[0].Key = "pinned.key"

	once := AssignUnique(entries)
	keys := make([]string, len(once))
	for i, e := range once {
		keys[i] = e.Key
	}

	twice := AssignUnique(once)
	if len(twice) != len(once) {
		t.Fatalf("second pass dropped entries: %d -> %d", len(once), len(twice))
	}
	for i, e := range twice {
		if e.Key != keys[i] {
			t.Errorf("second pass changed key %d: %q -> %q", i, keys[i], e.Key)
		}
	}
}

func TestAssignUnique_GroupOverflow(t *testing.T) {
	var entries []*citation.Entry
	for i := 0; i < 28; i++ {
		entries = append(entries, smithEntry(t, fmt.Sprintf("Paper %02d", i)))
	}

	got := AssignUnique(entries)
	if len(got) != 28 {
		t.Fatalf("retained %d entries, want 28", len(got))
	}
	if got[0].Key != "Smith.2024.a" {
		t.Errorf("first key = %q, want Smith.2024.a", got[0].Key)
	}
	if got[25].Key != "Smith.2024.z" {
		t.Errorf("26th key = %q, want Smith.2024.z", got[25].Key)
	}
	if got[26].Key != "Smith.2024.aa" {
		t.Errorf("27th key = %q, want Smith.2024.aa", got[26].Key)
	}
	if got[27].Key != "Smith.2024.ab" {
		t.Errorf("28th key = %q, want Smith.2024.ab", got[27].Key)
	}
}

func TestAssignUnique_MixedSurnames(t *testing.T) {
	smith := smithEntry(t, "Smith Paper")
	doe, err := citation.NewMisc([]string{"Doe, John"}, "Doe Paper", 2024)
	if err != nil {
		t.Fatal(err)
	}

	got := AssignUnique([]*citation.Entry{smith, doe})
	if got[0].Key != "Smith.2024" {
		t.Errorf("smith key = %q, want Smith.2024", got[0].Key)
	}
	if got[1].Key != "Doe.2024" {
		t.Errorf("doe key = %q, want Doe.2024", got[1].Key)
	}
}
