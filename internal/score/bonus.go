package score

import "unicode"

// startBoundary is the synthetic predecessor of the first candidate rune.
// The start of the string counts as the strongest boundary, same as a path
// separator.
const startBoundary = '/'

// bonusAt returns the positional bonus for matching cur when it directly
// follows prev. Separator bonuses take precedence over the capital bonus;
// the cases cannot actually overlap because none of the separators is a
// lowercase letter, but the order is fixed so the behavior stays stable if
// the separator set ever grows.
func (s *Scorer) bonusAt(prev, cur rune) float64 {
	switch prev {
	case '/':
		return s.tuning.MatchSlash
	case '.':
		return s.tuning.MatchDot
	case '-', '_', ' ':
		return s.tuning.MatchWord
	}
	if unicode.IsLower(prev) && unicode.IsUpper(cur) {
		return s.tuning.MatchCapital
	}
	return 0
}

// computeBonus returns one bonus per candidate rune. The values depend
// only on the candidate text, never on the query, so a caller re-scoring
// the same line against many queries could reuse them.
func (s *Scorer) computeBonus(candidate []rune) []float64 {
	bonus := make([]float64, len(candidate))
	prev := rune(startBoundary)
	for i, cur := range candidate {
		bonus[i] = s.bonusAt(prev, cur)
		prev = cur
	}
	return bonus
}
