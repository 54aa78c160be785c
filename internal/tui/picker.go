package tui

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/jmaargh/fzyr/internal/search"
)

// Options configures a Picker.
type Options struct {
	// Prompt is drawn before the query on the top line.
	Prompt string

	// Lines caps the number of result rows shown.
	Lines int

	// ShowScores prefixes each result with its numeric score.
	ShowScores bool

	// Theme supplies the styles. The zero value renders unstyled.
	Theme Theme
}

type keyAction int

const (
	actionNone keyAction = iota
	actionSelect
	actionAbort
)

// Picker runs an interactive selection session over a fixed candidate
// list. It is not safe for concurrent use; Run drives everything from a
// single goroutine.
type Picker struct {
	screen     tcell.Screen
	stream     *search.Streaming
	candidates []string
	opts       Options

	query    []rune
	selected int
	results  []search.Result
}

// New builds a picker on an initialized screen.
func New(screen tcell.Screen, searcher *search.Searcher, candidates []string, opts Options) *Picker {
	if opts.Lines <= 0 {
		opts.Lines = 10
	}
	return &Picker{
		screen:     screen,
		stream:     search.NewStreaming(searcher),
		candidates: candidates,
		opts:       opts,
	}
}

// Run drives the event loop until the user confirms a selection or
// aborts. It returns the selected candidate and true on confirmation,
// and "", false when the session was abandoned with Escape or Ctrl-C.
func (p *Picker) Run(ctx context.Context) (string, bool, error) {
	defer p.stream.Cancel()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	rankings := p.research(ctx)
	p.draw()

	for {
		select {
		case <-ctx.Done():
			return "", false, ctx.Err()

		case ranking, ok := <-rankings:
			rankings = nil
			if !ok {
				continue
			}
			if err := p.applyRanking(ranking); err != nil {
				return "", false, err
			}
			p.draw()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				p.screen.Sync()
				p.draw()
			case *tcell.EventKey:
				action, requery := p.handleKey(ev)
				if requery {
					rankings = p.research(ctx)
				}
				switch action {
				case actionSelect:
					if text, ok := p.selection(); ok {
						return text, true, nil
					}
				case actionAbort:
					return "", false, nil
				}
				p.draw()
			}
		}
	}
}

// research starts a ranking for the current query, superseding any
// in-flight one.
func (p *Picker) research(ctx context.Context) <-chan search.Ranking {
	return p.stream.Search(ctx, string(p.query), p.candidates)
}

// handleKey updates picker state for a single key event. It reports the
// resulting action and whether the query changed.
func (p *Picker) handleKey(ev *tcell.EventKey) (keyAction, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionAbort, false

	case tcell.KeyEnter:
		return actionSelect, false

	case tcell.KeyUp, tcell.KeyCtrlP:
		p.moveSelection(-1)

	case tcell.KeyDown, tcell.KeyCtrlN:
		p.moveSelection(1)

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.query) > 0 {
			p.query = p.query[:len(p.query)-1]
			return actionNone, true
		}

	case tcell.KeyCtrlU:
		if len(p.query) > 0 {
			p.query = p.query[:0]
			return actionNone, true
		}

	case tcell.KeyRune:
		p.query = append(p.query, ev.Rune())
		return actionNone, true
	}
	return actionNone, false
}

// applyRanking installs an asynchronous ranking if it is still current.
// Cancellation of a superseded search is expected and ignored.
func (p *Picker) applyRanking(r search.Ranking) error {
	if r.Err != nil {
		if errors.Is(r.Err, context.Canceled) {
			return nil
		}
		return r.Err
	}
	if r.Query != string(p.query) {
		return nil
	}
	p.results = r.Results
	p.clampSelection()
	return nil
}

func (p *Picker) moveSelection(delta int) {
	p.selected += delta
	p.clampSelection()
}

func (p *Picker) clampSelection() {
	if limit := p.visibleCount() - 1; p.selected > limit {
		p.selected = limit
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

// visibleCount is the number of result rows currently on screen.
func (p *Picker) visibleCount() int {
	return min(p.windowSize(), len(p.results))
}

// windowSize is the result row budget: the configured line count,
// bounded by the screen minus the prompt line.
func (p *Picker) windowSize() int {
	_, height := p.screen.Size()
	return max(0, min(p.opts.Lines, height-1))
}

// selection returns the currently selected candidate, if any.
func (p *Picker) selection() (string, bool) {
	if len(p.results) == 0 || p.selected >= len(p.results) {
		return "", false
	}
	return p.results[p.selected].Text, true
}
