package score

import (
	"math"
	"testing"
)

const scoreEpsilon = 1e-9

func approxEqual(a, b float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) < scoreEpsilon
}

func TestScoreSentinels(t *testing.T) {
	s := NewScorer(DefaultTuning())

	tests := []struct {
		name      string
		query     string
		candidate string
		want      float64
	}{
		{"no match", "zz", "foo/bar", ScoreMin},
		{"query longer than candidate", "abcd", "abc", ScoreMin},
		{"empty candidate", "a", "", ScoreMin},
		{"exact", "foo", "foo", ScoreMax},
		{"exact after folding", "FOO", "foo", ScoreMax},
		{"exact cyrillic folding", "б", "Б", ScoreMax},
		{"empty query", "", "anything", 0},
		{"empty query empty candidate", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score(tt.query, tt.candidate); got != tt.want {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.query, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestScoreValues(t *testing.T) {
	tuning := DefaultTuning()
	s := NewScorer(tuning)

	tests := []struct {
		name      string
		query     string
		candidate string
		want      float64
	}{
		// Match at the start boundary, one trailing gap.
		{"prefix", "a", "ab", tuning.MatchSlash + tuning.GapTrailing},
		// Match after one skipped prefix rune: no bonus, one leading gap.
		{"suffix no bonus", "a", "ba", tuning.GapLeading},
		// Consecutive run "bc" beats boundary-only scattered matches.
		{"run of two", "abc", "xaxbc", 0.985},
		{"scattered", "abc", "axbxc", 0.88},
		// Word aligned with a path boundary, four leading gaps.
		{"path boundary run", "amor", "app/amor", 3.88},
		{"mid word run", "amor", "appxamor", 2.98},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score(tt.query, tt.candidate); !approxEqual(got, tt.want) {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.query, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestScoreFiniteForPartialMatches(t *testing.T) {
	s := NewScorer(DefaultTuning())

	pairs := []struct{ query, candidate string }{
		{"fbr", "foo/bar"},
		{"teen", "seventeen"},
		{"mgc", "this is kind of magic"},
		{"rb", "lib/rb.rs"},
		{"♺", "ñîƹ♺à"},
	}

	for _, p := range pairs {
		got := s.Score(p.query, p.candidate)
		if math.IsInf(got, 0) || math.IsNaN(got) {
			t.Errorf("Score(%q, %q) = %v, want finite", p.query, p.candidate, got)
		}
	}
}

func TestScoreConsecutivePreference(t *testing.T) {
	s := NewScorer(DefaultTuning())

	run := s.Score("abc", "xaxbc")
	scattered := s.Score("abc", "axbxc")
	if run <= scattered {
		t.Errorf("run candidate scored %v, scattered %v; want run higher", run, scattered)
	}
}

func TestScoreBoundaryPreference(t *testing.T) {
	s := NewScorer(DefaultTuning())

	boundary := s.Score("amor", "app/amor")
	midWord := s.Score("amor", "appxamor")
	if boundary <= midWord {
		t.Errorf("boundary match scored %v, mid-word %v; want boundary higher", boundary, midWord)
	}
}

func TestScoreLeadingGapCharged(t *testing.T) {
	s := NewScorer(DefaultTuning())

	// Skipped runes before the first matched rune cost one leading gap
	// each, so a match closer to the start wins.
	near := s.Score("b", "xb")
	far := s.Score("b", "xxxxxxb")
	if near <= far {
		t.Errorf("Score(b, xb) = %v not above Score(b, xxxxxxb) = %v", near, far)
	}

	tuning := DefaultTuning()
	if want := tuning.GapLeading; !approxEqual(near, want) {
		t.Errorf("Score(b, xb) = %v, want %v", near, want)
	}
	if want := 6 * tuning.GapLeading; !approxEqual(far, want) {
		t.Errorf("Score(b, xxxxxxb) = %v, want %v", far, want)
	}
}

func TestScoreGapMonotonicity(t *testing.T) {
	s := NewScorer(DefaultTuning())

	// Widening the gap between two matched runes must never raise the
	// score: gap penalties are all non-positive.
	tests := []struct{ tight, loose string }{
		{"axb", "axxb"},
		{"axxb", "axxxb"},
		{"a/b", "a/xb"},
	}
	for _, tt := range tests {
		tight := s.Score("ab", tt.tight)
		loose := s.Score("ab", tt.loose)
		if loose > tight+scoreEpsilon {
			t.Errorf("Score(ab, %q) = %v exceeds Score(ab, %q) = %v", tt.loose, loose, tt.tight, tight)
		}
	}
}

func TestScoreCustomTuning(t *testing.T) {
	// With the capital bonus zeroed out, a camelCase boundary is worth no
	// more than a plain mid-word match.
	tuning := DefaultTuning()
	tuning.MatchCapital = 0
	flat := NewScorer(tuning)
	stock := NewScorer(DefaultTuning())

	if got, want := flat.Score("b", "aB"), flat.Score("b", "ab"); !approxEqual(got, want) {
		t.Errorf("zeroed capital bonus: Score(b, aB) = %v, Score(b, ab) = %v; want equal", got, want)
	}
	if got, plain := stock.Score("b", "aB"), stock.Score("b", "ab"); got <= plain {
		t.Errorf("stock tuning: Score(b, aB) = %v not above Score(b, ab) = %v", got, plain)
	}
}

func TestScorerTuning(t *testing.T) {
	tuning := DefaultTuning()
	tuning.GapInner = -0.5
	s := NewScorer(tuning)
	if got := s.Tuning().GapInner; got != -0.5 {
		t.Errorf("Tuning().GapInner = %v, want -0.5", got)
	}
}

func TestDefaultTuningSigns(t *testing.T) {
	tuning := DefaultTuning()

	positives := map[string]float64{
		"MatchConsecutive": tuning.MatchConsecutive,
		"MatchSlash":       tuning.MatchSlash,
		"MatchWord":        tuning.MatchWord,
		"MatchCapital":     tuning.MatchCapital,
		"MatchDot":         tuning.MatchDot,
	}
	for name, v := range positives {
		if v <= 0 {
			t.Errorf("%s = %v, want > 0", name, v)
		}
	}

	negatives := map[string]float64{
		"GapLeading":  tuning.GapLeading,
		"GapTrailing": tuning.GapTrailing,
		"GapInner":    tuning.GapInner,
	}
	for name, v := range negatives {
		if v >= 0 {
			t.Errorf("%s = %v, want < 0", name, v)
		}
	}

	if tuning.GapInner >= tuning.GapLeading {
		t.Errorf("inner gap %v should cost more than leading gap %v", tuning.GapInner, tuning.GapLeading)
	}
}

func TestScoreDefaultMatchesScorer(t *testing.T) {
	s := NewScorer(DefaultTuning())
	if got, want := ScoreDefault("fbr", "foo/bar"), s.Score("fbr", "foo/bar"); got != want {
		t.Errorf("ScoreDefault = %v, Scorer.Score = %v", got, want)
	}
}
