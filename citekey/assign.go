package citekey

import (
	"strings"

	"github.com/citekit/citekit/citation"
)

// AssignUnique deduplicates a citation collection and assigns every retained
// entry a unique key. It mutates Key on the retained entries and returns
// them as a new slice, preserving input order; no other field is touched.
//
// Deduplication is by value (citation.Entry.Equal semantics, via
// Fingerprint): for each entry, if an earlier retained entry has equal
// content, the later one is dropped. Dropped entries are excluded from the
// returned slice and never reassigned a key.
//
// Key assignment groups retained entries by base key: an explicit
// user-supplied key stands as its own base; an unset key, or one that looks
// auto-generated (equal to Generate(e) or Generate(e) plus a letter
// suffix), is recomputed from the entry. Sole members of a group keep the
// unsuffixed base; larger groups get ".a", ".b", ... in original order,
// continuing with two-letter suffixes ("aa", "ab", ...) past "z". Explicit
// keys that collide are suffixed like any other so the result is always
// collision-free. The operation is idempotent: rerunning it on its own
// output drops nothing and changes no key.
//
// Callers must not mutate the collection concurrently during the call.
func AssignUnique(entries []*citation.Entry) []*citation.Entry {
	retained := dedupe(entries)

	groups := make(map[string][]*citation.Entry)
	var order []string
	for _, e := range retained {
		base := baseKey(e)
		if _, seen := groups[base]; !seen {
			order = append(order, base)
		}
		groups[base] = append(groups[base], e)
	}

	for _, base := range order {
		group := groups[base]
		if len(group) == 1 {
			group[0].Key = base
			continue
		}
		for i, e := range group {
			e.Key = base + "." + letterSuffix(i)
		}
	}

	return retained
}

// dedupe drops entries whose content equals an earlier retained entry,
// keeping the earliest occurrence. Stable and order-preserving.
func dedupe(entries []*citation.Entry) []*citation.Entry {
	seen := make(map[string]bool, len(entries))
	retained := make([]*citation.Entry, 0, len(entries))
	for _, e := range entries {
		fp := e.Fingerprint()
		if seen[fp] {
			continue
		}
		seen[fp] = true
		retained = append(retained, e)
	}
	return retained
}

// baseKey returns the key an entry is grouped under: its explicit key, or
// the generated key when the current key is unset or looks auto-generated.
func baseKey(e *citation.Entry) string {
	gen := Generate(e)
	if e.Key == "" || e.Key == gen || isSuffixed(e.Key, gen) {
		return gen
	}
	return e.Key
}

// isSuffixed reports whether key is base plus a "."-separated lowercase
// letter suffix, the shape AssignUnique itself produces.
func isSuffixed(key, base string) bool {
	rest, ok := strings.CutPrefix(key, base+".")
	if !ok || rest == "" {
		return false
	}
	for _, r := range rest {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// letterSuffix maps a group position to "a".."z", "aa", "ab", ... like
// spreadsheet column names.
func letterSuffix(i int) string {
	var b []byte
	for {
		b = append([]byte{byte('a' + i%26)}, b...)
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	return string(b)
}
