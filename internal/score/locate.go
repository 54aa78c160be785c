package score

// Locate scores candidate against query and additionally recovers the rune
// indices of the matched characters, for highlighting. The score is
// identical to Score for the same inputs.
//
// For a matching candidate the returned indices are strictly increasing
// and there are exactly len(query-in-runes) of them. Non-matches return
// (ScoreMin, nil); an exact fold-equal match returns ScoreMax with every
// index; an empty query returns (0, nil).
func (s *Scorer) Locate(query, candidate string) (Score, []int) {
	q, c, exact, ok := prepare(query, candidate)
	switch {
	case len(q) == 0:
		return 0, nil
	case !ok:
		return ScoreMin, nil
	case exact:
		positions := make([]int, len(q))
		for i := range positions {
			positions[i] = i
		}
		return ScoreMax, positions
	}

	d, m := s.fillTables(q, c)
	return m[len(q)-1][len(c)-1], s.backtrack(d, m)
}

// backtrack walks the tables from the bottom-right corner and recovers one
// matched position per query rune.
//
// At each step the match for query rune j is the rightmost position i
// where an exact match exists and carries the best running score
// (d[j][i] == m[j][i]); positions to its right were gaps. When that match
// extended a consecutive run, the run forces the previous match to sit at
// exactly (j-1, i-1), so the scan must take it rather than a
// possibly-equal-scoring fresh start further left.
func (s *Scorer) backtrack(d, m [][]float64) []int {
	nq, nc := len(d), len(d[0])
	positions := make([]int, nq)

	required := false
	i := nc - 1
	for j := nq - 1; j >= 0; j-- {
		for ; i >= 0; i-- {
			if d[j][i] != ScoreMin && (required || d[j][i] == m[j][i]) {
				required = j > 0 && i > 0 &&
					m[j][i] == d[j-1][i-1]+s.tuning.MatchConsecutive
				positions[j] = i
				i--
				break
			}
		}
	}
	return positions
}
