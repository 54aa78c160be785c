// Package search ranks candidate lines against a query.
//
// A Searcher runs the cheap existence check from package score over every
// candidate, scores the survivors, and returns them best first with the
// original input order breaking ties. Large candidate sets are split into
// chunks scored on parallel workers; each chunk owns its tables, so the
// only synchronization is the final merge.
//
// Streaming wraps a Searcher for interactive use: starting a new search
// cancels the one in flight, and stale results are simply discarded.
// Results for repeated queries over a fixed candidate set are served from
// an LRU cache.
package search
