package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/jmaargh/fzyr/internal/search"
)

// FormatScore renders the fixed-width score column shown before a
// result. Sentinel scores get symbolic labels instead of numbers.
func FormatScore(s float64) string {
	switch {
	case math.IsInf(s, 1):
		return "(  max) "
	case math.IsInf(s, -1):
		return "(     ) "
	default:
		return fmt.Sprintf("(%5.2f) ", s)
	}
}

// draw repaints the whole screen: prompt line, then the result window.
func (p *Picker) draw() {
	p.screen.Clear()
	width, _ := p.screen.Size()

	p.drawPrompt(width)
	for row := 0; row < p.visibleCount(); row++ {
		p.drawResult(row, width, p.results[row], row == p.selected)
	}

	p.screen.Show()
}

func (p *Picker) drawPrompt(width int) {
	col := 0
	for _, r := range p.opts.Prompt {
		col = p.putRune(col, 0, r, p.opts.Theme.Prompt, width)
	}
	for _, r := range p.query {
		col = p.putRune(col, 0, r, p.opts.Theme.Text, width)
	}
	p.screen.ShowCursor(min(col, width-1), 0)
}

func (p *Picker) drawResult(row, width int, res search.Result, selected bool) {
	textStyle, matchStyle := p.opts.Theme.Text, p.opts.Theme.Match
	if selected {
		textStyle, matchStyle = p.opts.Theme.Selected, p.opts.Theme.SelectedMatch
	}

	y := row + 1
	col := 0

	if p.opts.ShowScores {
		for _, r := range FormatScore(res.Score) {
			col = p.putRune(col, y, r, p.opts.Theme.Score, width)
		}
	}

	// Positions is sorted ascending, so a single cursor suffices.
	next := 0
	for i, r := range []rune(res.Text) {
		if col >= width {
			break
		}
		style := textStyle
		if next < len(res.Positions) && res.Positions[next] == i {
			style = matchStyle
			next++
		}
		col = p.putRune(col, y, r, style, width)
	}

	if selected {
		for col < width {
			p.screen.SetContent(col, y, ' ', nil, textStyle)
			col++
		}
	}
}

// putRune writes a single rune and returns the next column, advancing
// by the rune's display width.
func (p *Picker) putRune(col, row int, r rune, style tcell.Style, width int) int {
	if col >= width {
		return col
	}
	p.screen.SetContent(col, row, r, nil, style)
	return col + uniseg.StringWidth(string(r))
}
