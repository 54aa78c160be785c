package search

import (
	"context"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/jmaargh/fzyr/internal/score"
)

// Result is one ranked candidate.
type Result struct {
	// Index is the candidate's position in the input ordering.
	Index int

	// Text is the candidate line.
	Text string

	// Score is the rank score; never score.ScoreMin (non-matches are
	// filtered before ranking).
	Score score.Score

	// Positions holds the rune indices of the matched characters, for
	// highlighting. Nil unless the search located positions.
	Positions []int
}

// Options configures a Searcher.
type Options struct {
	// Tuning holds the scoring weights.
	Tuning score.Tuning

	// Workers caps the number of parallel scoring workers. The effective
	// count also ramps with the candidate set size, so small sets stay
	// serial.
	Workers int

	// CacheSize is the maximum number of cached query results. Set to 0
	// to disable caching.
	CacheSize int
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Tuning:    score.DefaultTuning(),
		Workers:   4,
		CacheSize: 100,
	}
}

// Searcher ranks candidates. It is safe for concurrent use.
type Searcher struct {
	scorer  *score.Scorer
	workers int
	cache   *Cache
}

// New creates a Searcher with the given options.
func New(opts Options) *Searcher {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	var cache *Cache
	if opts.CacheSize > 0 {
		cache = NewCache(opts.CacheSize)
	}
	return &Searcher{
		scorer:  score.NewScorer(opts.Tuning),
		workers: opts.Workers,
		cache:   cache,
	}
}

// Rank scores every matching candidate and returns them ordered best
// first. Candidates with equal scores keep their relative input order. An
// empty query returns every candidate unscored in input order.
func (s *Searcher) Rank(ctx context.Context, query string, candidates []string) ([]Result, error) {
	return s.rank(ctx, query, candidates, false)
}

// RankLocate is Rank with matched rune positions recovered for each
// result, for highlighting.
func (s *Searcher) RankLocate(ctx context.Context, query string, candidates []string) ([]Result, error) {
	return s.rank(ctx, query, candidates, true)
}

func (s *Searcher) rank(ctx context.Context, query string, candidates []string, locate bool) ([]Result, error) {
	if query == "" {
		return emptyQueryResults(candidates), nil
	}

	var key string
	if s.cache != nil {
		key = cacheKey(query, candidates, locate)
		if cached := s.cache.Get(key); cached != nil {
			return cached, nil
		}
	}

	workers := parallelism(len(candidates), s.workers)

	var results []Result
	var err error
	if workers < 2 {
		results, err = s.rankChunk(ctx, query, candidates, 0, locate)
	} else {
		results, err = s.rankParallel(ctx, query, candidates, workers, locate)
	}
	if err != nil {
		return nil, err
	}

	sortResults(results)

	if s.cache != nil {
		s.cache.Set(key, results)
	}
	return results, nil
}

// rankChunk scores one contiguous slice of candidates. offset is the
// index of the first chunk element in the full candidate list, preserved
// so tie-breaking stays stable across chunk boundaries.
func (s *Searcher) rankChunk(ctx context.Context, query string, chunk []string, offset int, locate bool) ([]Result, error) {
	results := make([]Result, 0, len(chunk)/4+1)
	for i, candidate := range chunk {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if !score.HasMatch(query, candidate) {
			continue
		}

		r := Result{Index: offset + i, Text: candidate}
		if locate {
			r.Score, r.Positions = s.scorer.Locate(query, candidate)
		} else {
			r.Score = s.scorer.Score(query, candidate)
		}
		results = append(results, r)
	}
	return results, nil
}

// sortResults orders by descending score, then ascending input index.
// Sorting on the index makes the order deterministic and equivalent to a
// stable sort on score alone.
func sortResults(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Index < results[j].Index
	})
}

// emptyQueryResults returns every candidate with a neutral score in input
// order, so an interactive caller can show the full list before any
// typing happens.
func emptyQueryResults(candidates []string) []Result {
	results := make([]Result, len(candidates))
	for i, c := range candidates {
		results[i] = Result{Index: i, Text: c}
	}
	return results
}

// cacheKey identifies one ranking: the query, a fingerprint of the
// candidate set, and whether positions were located. The fingerprint
// keeps a Searcher safe to reuse across different candidate lists.
func cacheKey(query string, candidates []string, locate bool) string {
	digest := xxhash.New()
	for _, c := range candidates {
		_, _ = digest.WriteString(c)
		_, _ = digest.Write([]byte{0})
	}

	key := query + "\x00" + strconv.FormatUint(digest.Sum64(), 16)
	if locate {
		key += "\x00locate"
	}
	return key
}
