package symbols

import (
	"regexp"
	"strings"

	"cbf-translator/internal/textutil"
)

// separators are the characters CBF names use between words. Line breaks
// split too so that no symbol spans lines of a translation request.
var separators = regexp.MustCompile(`[_: \-.\r\n]`)

// Lookup maps a symbol to its translation. It is read-only once built.
type Lookup map[string]string

// Split breaks s into symbols, keeping every separator as its own element so
// that Join can restore the string verbatim.
func Split(s string) []string {
	var parts []string
	last := 0
	for _, loc := range separators.FindAllStringIndex(s, -1) {
		if loc[0] > last {
			parts = append(parts, s[last:loc[0]])
		}
		parts = append(parts, s[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(s) {
		parts = append(parts, s[last:])
	}
	return parts
}

// Collect returns the distinct symbols of all strings in first-seen order.
func Collect(strs []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range strs {
		for _, sym := range Split(s) {
			if _, ok := seen[sym]; ok {
				continue
			}
			seen[sym] = struct{}{}
			out = append(out, sym)
		}
	}
	return out
}

// Candidates filters syms down to those worth translating: longer than one character.
func Candidates(syms []string) []string {
	var out []string
	for _, s := range syms {
		if textutil.Len(s) > 1 {
			out = append(out, s)
		}
	}
	return out
}

// Join rebuilds s from its symbols, substituting translations from lookup.
// Symbols missing from lookup, separators included, pass through unchanged.
func Join(s string, lookup Lookup) string {
	var sb strings.Builder
	for _, sym := range Split(s) {
		if tr, ok := lookup[sym]; ok {
			sb.WriteString(tr)
			continue
		}
		sb.WriteString(sym)
	}
	return sb.String()
}
