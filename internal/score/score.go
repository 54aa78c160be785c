package score

// Scorer ranks candidates against queries using a fixed Tuning. A Scorer
// is immutable after construction and safe for concurrent use.
type Scorer struct {
	tuning Tuning
}

// NewScorer creates a scorer with the given weights.
func NewScorer(t Tuning) *Scorer {
	return &Scorer{tuning: t}
}

// Tuning returns the weights the scorer was built with.
func (s *Scorer) Tuning() Tuning {
	return s.tuning
}

var defaultScorer = NewScorer(DefaultTuning())

// ScoreDefault scores candidate against query with the stock weights.
func ScoreDefault(query, candidate string) Score {
	return defaultScorer.Score(query, candidate)
}

// LocateDefault locates query within candidate with the stock weights.
func LocateDefault(query, candidate string) (Score, []int) {
	return defaultScorer.Locate(query, candidate)
}

// Score calculates how well candidate matches query.
//
// Non-matches return ScoreMin and candidates equal to the query after case
// folding return ScoreMax; every other matching candidate gets a finite
// score from the alignment tables. An empty query scores 0 against
// anything (a degenerate always-match; callers normally filter it before
// scoring). Cost is O(len(query) * len(candidate)) time and space.
func (s *Scorer) Score(query, candidate string) Score {
	q, c, exact, ok := prepare(query, candidate)
	switch {
	case len(q) == 0:
		return 0
	case !ok:
		return ScoreMin
	case exact:
		return ScoreMax
	}

	_, m := s.fillTables(q, c)
	return m[len(q)-1][len(c)-1]
}

// prepare splits both strings into runes and checks, in a single pass over
// the candidate, whether it matches the query. exact means the two are
// equal after folding: once a match is known, equal rune counts imply the
// greedy scan consumed every candidate rune.
func prepare(query, candidate string) (q, c []rune, exact, ok bool) {
	q = []rune(query)
	c = []rune(candidate)

	qi := 0
	for _, r := range c {
		if qi < len(q) && foldRune(r) == foldRune(q[qi]) {
			qi++
		}
	}
	ok = qi == len(q)
	exact = ok && len(q) == len(c)
	return q, c, exact, ok
}

// fillTables runs the alignment recurrence and returns the two tables,
// indexed [query rune j][candidate rune i]:
//
//   - d[j][i] is the best score of an alignment that matches query rune j
//     exactly at candidate position i, or ScoreMin when none exists.
//   - m[j][i] is the best score of an alignment of query[0..j] ending at
//     or before position i, with gap costs charged for the skipped runes.
//
// A matched rune either starts a fresh run from the best prior alignment,
// paying its positional bonus, or extends an immediately preceding match
// for the flat consecutive reward. Matching the first query rune at
// position i additionally pays the leading gap once per skipped prefix
// rune, so earlier first matches beat later ones. Running gaps cost the
// trailing rate on the last query row and the inner rate elsewhere.
//
// ScoreMin is -Inf, so invalid predecessors stay -Inf through the
// arithmetic and never leak a finite score.
func (s *Scorer) fillTables(q, c []rune) (d, m [][]float64) {
	nq, nc := len(q), len(c)
	fq, fc := foldRunes(q), foldRunes(c)
	bonus := s.computeBonus(c)

	d = make([][]float64, nq)
	m = make([][]float64, nq)
	for j := 0; j < nq; j++ {
		d[j] = make([]float64, nc)
		m[j] = make([]float64, nc)

		gap := s.tuning.GapInner
		if j == nq-1 {
			gap = s.tuning.GapTrailing
		}

		prevM := ScoreMin // m[j][i-1]
		for i := 0; i < nc; i++ {
			best := ScoreMin
			if fq[j] == fc[i] {
				switch {
				case j == 0:
					best = float64(i)*s.tuning.GapLeading + bonus[i]
				case i > 0:
					best = max(
						m[j-1][i-1]+bonus[i],
						d[j-1][i-1]+s.tuning.MatchConsecutive,
					)
				}
			}
			d[j][i] = best
			prevM = max(best, prevM+gap)
			m[j][i] = prevM
		}
	}
	return d, m
}
