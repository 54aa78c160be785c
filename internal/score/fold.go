package score

import "unicode"

// foldRune maps a rune to its Unicode simple lowercase form, leaving runes
// without one unchanged. Query and candidate runes pass through the same
// fold before any comparison, so matching is case-insensitive across
// scripts, not just ASCII.
func foldRune(r rune) rune {
	return unicode.ToLower(r)
}

// foldRunes folds every rune in rs into a new slice.
func foldRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = foldRune(r)
	}
	return out
}
