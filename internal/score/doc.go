// Package score implements fuzzy match detection and ranking scores.
//
// A candidate matches a query when it contains every query character in
// order, ignoring case and contiguity. Matching candidates are scored by a
// dynamic program that rewards compact matches and matches aligned with
// word, path, and camelCase boundaries, and penalizes gaps between matched
// characters.
//
// # Scores
//
// Scores are float64 values; higher is better. Two sentinel values sit
// outside the finite range:
//
//   - ScoreMin (-Inf): the candidate does not match the query
//   - ScoreMax (+Inf): the candidate equals the query after case folding
//
// The recurrence itself only ever produces finite values; the sentinels
// come from the short-circuit checks, so they compare correctly against
// every real score.
//
// # Usage
//
//	s := score.NewScorer(score.DefaultTuning())
//	if score.HasMatch("fbr", "foo/bar") {
//	    val, positions := s.Locate("fbr", "foo/bar")
//	    // val is the rank score, positions are the matched rune indices
//	}
//
// All functions are pure and safe for concurrent use; each call owns its
// own tables.
package score
