// Package tui implements the interactive picker.
//
// The picker owns a tcell screen and a streaming searcher. Every query
// edit cancels the in-flight ranking and starts a new one; results arrive
// asynchronously and are discarded when they no longer belong to the
// current query. The display is a prompt line followed by a bounded
// window of the best results, with matched runes highlighted.
package tui
