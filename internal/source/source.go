// Package source supplies candidate lines to the search engine.
//
// The engine assumes valid Unicode, so the reader replaces ill-formed
// UTF-8 byte sequences with U+FFFD before any line reaches it.
package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	// initialBuffer sizes the scanner's starting buffer.
	initialBuffer = 64 * 1024

	// maxLineBytes bounds a single input line. Longer lines are an input
	// error rather than a silent truncation.
	maxLineBytes = 1024 * 1024
)

// ReadLines reads one candidate per line from r, in order. Lines are
// trimmed of surrounding whitespace; order is preserved because it breaks
// ranking ties downstream. Ill-formed UTF-8 is replaced with U+FFFD.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(transform.NewReader(r, runes.ReplaceIllFormed()))
	scanner.Buffer(make([]byte, 0, initialBuffer), maxLineBytes)

	var out []string
	for scanner.Scan() {
		out = append(out, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading candidates: %w", err)
	}
	return out, nil
}
