package score

// HasMatch reports whether candidate contains every rune of query in
// order, case-insensitively. Runs in O(len(candidate)) with no allocation
// beyond the query runes, so it serves as the cheap reject before the
// scorer touches a candidate.
//
// An empty query matches everything; a query longer than the candidate
// never matches.
func HasMatch(query, candidate string) bool {
	if query == "" {
		return true
	}

	qr := []rune(query)
	qi := 0
	for _, c := range candidate {
		if foldRune(c) == foldRune(qr[qi]) {
			qi++
			if qi == len(qr) {
				return true
			}
		}
	}
	return false
}
