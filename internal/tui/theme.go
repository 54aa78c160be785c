package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme bundles the styles used by the picker.
type Theme struct {
	// Prompt styles the prompt text before the query.
	Prompt tcell.Style

	// Text styles ordinary result text.
	Text tcell.Style

	// Match styles matched runes inside a result.
	Match tcell.Style

	// Selected styles the currently selected result line.
	Selected tcell.Style

	// SelectedMatch styles matched runes on the selected line.
	SelectedMatch tcell.Style

	// Score styles the optional score column.
	Score tcell.Style
}

// NewTheme builds a theme around the given highlight color ("#rrggbb").
// An empty or unparsable color falls back to reverse video for matches.
func NewTheme(highlight string) Theme {
	base := tcell.StyleDefault

	match := base.Reverse(true)
	if c, err := colorful.Hex(highlight); err == nil {
		r, g, b := c.RGB255()
		match = base.
			Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b))).
			Bold(true)
	}

	return Theme{
		Prompt:        base.Bold(true),
		Text:          base,
		Match:         match,
		Selected:      base.Reverse(true),
		SelectedMatch: match.Reverse(true),
		Score:         base.Dim(true),
	}
}
