package search

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// rankParallel splits the candidates into one contiguous chunk per worker
// and scores the chunks concurrently. Each chunk carries its offset into
// the full list, so the merged results keep the input indices needed for
// stable tie-breaking.
func (s *Searcher) rankParallel(ctx context.Context, query string, candidates []string, workers int, locate bool) ([]Result, error) {
	perWorker := ceilDiv(len(candidates), workers)

	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	merged := make([]Result, 0, len(candidates)/4+1)

	for start := 0; start < len(candidates); start += perWorker {
		end := min(start+perWorker, len(candidates))
		offset, chunk := start, candidates[start:end]

		g.Go(func() error {
			results, err := s.rankChunk(ctx, query, chunk, offset, locate)
			if err != nil {
				return err
			}
			mu.Lock()
			merged = append(merged, results...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return merged, nil
}

// parallelism decides how many workers to use for count candidates. The
// ramp avoids spinning up workers that would each score a handful of
// lines: roughly one worker per four candidates for small sets, one per
// eight for large ones, clamped to the configured cap and to [1, count].
func parallelism(count, configured int) int {
	var ramped int
	switch {
	case count < 17:
		ramped = ceilDiv(count, 4)
	case count > 32:
		ramped = ceilDiv(count, 8)
	default:
		ramped = 4
	}

	n := min(configured, ramped, count)
	if n < 1 {
		n = 1
	}
	return n
}

// ceilDiv is integer ceiling division.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
