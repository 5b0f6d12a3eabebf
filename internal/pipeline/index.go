package pipeline

import (
	"cbf-translator/internal/parser"
	"cbf-translator/internal/symbols"
	"cbf-translator/internal/textutil"
)

// Filter keeps the records worth translating: text values (not hex, not
// integers) longer than two characters that are not a single bare word.
func Filter(records []parser.Record) []parser.Record {
	var kept []parser.Record
	for _, r := range records {
		if Translatable(r.Text) {
			kept = append(kept, r)
		}
	}
	return kept
}

// Translatable reports whether a dump value is sent for translation.
func Translatable(text string) bool {
	if textutil.Classify(text) != textutil.KindText {
		return false
	}
	return textutil.Len(text) > 2 && !textutil.IsAlpha(text)
}

// StringIndex maps each distinct string to the indices where it occurs.
// Keys and indices are kept in first-occurrence order.
type StringIndex struct {
	keys    []string
	indices map[string][]int
}

// BuildIndex groups records by text.
func BuildIndex(records []parser.Record) *StringIndex {
	si := &StringIndex{indices: make(map[string][]int)}
	for _, r := range records {
		if _, ok := si.indices[r.Text]; !ok {
			si.keys = append(si.keys, r.Text)
		}
		si.indices[r.Text] = append(si.indices[r.Text], r.Index)
	}
	return si
}

// Strings returns the distinct strings in first-occurrence order.
func (si *StringIndex) Strings() []string { return si.keys }

// Indices returns the indices where s occurs.
func (si *StringIndex) Indices(s string) []int { return si.indices[s] }

// Len returns the number of distinct strings.
func (si *StringIndex) Len() int { return len(si.keys) }

// Reassemble rebuilds every indexed string from its translated symbols.
// The result is keyed by the original string.
func Reassemble(si *StringIndex, lookup symbols.Lookup) map[string]string {
	out := make(map[string]string, si.Len())
	for _, s := range si.keys {
		out[s] = symbols.Join(s, lookup)
	}
	return out
}

// Complete lays out the output: each index of a translated string gets the
// translation, every other index keeps its original text. When an index
// repeats in the input, its first record wins.
func Complete(records []parser.Record, si *StringIndex, translated map[string]string) map[int]string {
	lines := make(map[int]string, len(records))
	for _, s := range si.keys {
		tr, ok := translated[s]
		if !ok {
			continue
		}
		for _, idx := range si.indices[s] {
			if _, set := lines[idx]; !set {
				lines[idx] = tr
			}
		}
	}
	for _, r := range records {
		if _, set := lines[r.Index]; !set {
			lines[r.Index] = r.Text
		}
	}
	return lines
}
