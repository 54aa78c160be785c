package score

import "math"

// Score is how well a candidate matches a query. Higher is better.
type Score = float64

var (
	// ScoreMin is the score of a candidate that does not match the query.
	ScoreMin = math.Inf(-1)

	// ScoreMax is the score of a candidate that equals the query after
	// case folding.
	ScoreMax = math.Inf(1)
)

// Tuning holds the bonus and penalty weights used by the scorer. The
// weights are read-only once a Scorer is constructed, so alternate tunings
// can be compared side by side.
type Tuning struct {
	// GapLeading is charged per unmatched candidate rune before the first
	// matched rune.
	GapLeading float64

	// GapTrailing is charged per unmatched candidate rune after the last
	// matched rune.
	GapTrailing float64

	// GapInner is charged per unmatched candidate rune between two matched
	// runes. Inner gaps cost more than edge gaps.
	GapInner float64

	// MatchConsecutive rewards a matched rune immediately following the
	// previous matched rune. It outweighs every positional bonus.
	MatchConsecutive float64

	// MatchSlash rewards a matched rune directly after a path separator.
	MatchSlash float64

	// MatchWord rewards a matched rune directly after '-', '_', or ' '.
	MatchWord float64

	// MatchCapital rewards an uppercase matched rune directly after a
	// lowercase rune.
	MatchCapital float64

	// MatchDot rewards a matched rune directly after '.'.
	MatchDot float64
}

// DefaultTuning returns the stock weights.
func DefaultTuning() Tuning {
	return Tuning{
		GapLeading:       -0.005,
		GapTrailing:      -0.005,
		GapInner:         -0.01,
		MatchConsecutive: 1.0,
		MatchSlash:       0.9,
		MatchWord:        0.8,
		MatchCapital:     0.7,
		MatchDot:         0.6,
	}
}
