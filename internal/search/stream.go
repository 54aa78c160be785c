package search

import (
	"context"
	"sync"
)

// Ranking is the outcome of one streamed search.
type Ranking struct {
	// Query is the query the results belong to. Receivers compare it
	// against their current query to discard stale rankings.
	Query string

	// Results is the ranked list with matched positions.
	Results []Result

	// Err is context.Canceled when a newer search superseded this one.
	Err error
}

// Streaming runs at most one search at a time on behalf of an interactive
// caller. Starting a new search cancels the previous one; the core is
// side-effect free, so cancelled work is simply discarded.
type Streaming struct {
	searcher *Searcher

	mu     sync.Mutex
	cancel context.CancelFunc
	last   string
}

// NewStreaming wraps searcher for interactive use.
// Panics if searcher is nil.
func NewStreaming(searcher *Searcher) *Streaming {
	if searcher == nil {
		panic("search: NewStreaming called with nil searcher")
	}
	return &Streaming{searcher: searcher}
}

// Search cancels any in-flight search and ranks candidates against query
// in the background, locating match positions. The returned channel
// delivers exactly one Ranking and is then closed.
func (st *Streaming) Search(ctx context.Context, query string, candidates []string) <-chan Ranking {
	st.mu.Lock()
	if st.cancel != nil {
		st.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	st.cancel = cancel
	st.last = query
	st.mu.Unlock()

	out := make(chan Ranking, 1)
	go func() {
		defer close(out)
		results, err := st.searcher.RankLocate(ctx, query, candidates)
		out <- Ranking{Query: query, Results: results, Err: err}
	}()
	return out
}

// Cancel stops the current search, if any.
func (st *Streaming) Cancel() {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.cancel != nil {
		st.cancel()
		st.cancel = nil
	}
}

// LastQuery returns the most recently searched query.
func (st *Streaming) LastQuery() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.last
}
