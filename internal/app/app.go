// Package app wires configuration, input, searching and the front ends
// together, and maps outcomes to process exit codes.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/jmaargh/fzyr/internal/config"
	"github.com/jmaargh/fzyr/internal/search"
	"github.com/jmaargh/fzyr/internal/source"
	"github.com/jmaargh/fzyr/internal/tui"
)

// Process exit codes.
const (
	// ExitOK means a selection was made or at least one match printed.
	ExitOK = 0
	// ExitFailure covers empty result sets and runtime errors.
	ExitFailure = 1
	// ExitUsage reports invalid flag combinations.
	ExitUsage = 2
	// ExitAborted means the interactive session was abandoned.
	ExitAborted = 130
)

// Options carries the command line settings. Zero values mean "not
// given": the configuration layer fills those in.
type Options struct {
	// Query, when non-empty, selects batch mode.
	Query string

	// Lines caps displayed or printed results.
	Lines int

	// Prompt overrides the interactive prompt.
	Prompt string

	// ShowScores prefixes results with their scores.
	ShowScores bool

	// Workers caps the parallel scoring workers.
	Workers int

	// Benchmark, when positive, repeats the batch ranking that many
	// times and prints nothing.
	Benchmark int

	// ConfigPath overrides the config file location.
	ConfigPath string
}

// App is the assembled program.
type App struct {
	cfg      config.Config
	opts     Options
	log      *Logger
	searcher *search.Searcher
	stderr   io.Writer
}

// New loads configuration, applies flag overrides and builds the
// searcher.
func New(opts Options) (*App, error) {
	path := opts.ConfigPath
	if path == "" {
		// Best effort; an unresolvable config dir just skips the file layer.
		path, _ = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if opts.Lines > 0 {
		cfg.Lines = opts.Lines
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if opts.Prompt != "" {
		cfg.Prompt = opts.Prompt
	}
	if opts.ShowScores {
		cfg.ShowScores = true
	}

	cacheSize := search.DefaultOptions().CacheSize
	if opts.Benchmark > 0 {
		// Repeated identical queries must do real work.
		cacheSize = 0
	}
	searcher := search.New(search.Options{
		Tuning:    cfg.Tuning,
		Workers:   cfg.Workers,
		CacheSize: cacheSize,
	})

	return &App{
		cfg:      cfg,
		opts:     opts,
		log:      NewLoggerFromEnv(),
		searcher: searcher,
		stderr:   os.Stderr,
	}, nil
}

// Run dispatches to the right front end based on the options and on
// whether a terminal is attached.
func (a *App) Run(ctx context.Context) int {
	switch {
	case a.opts.Benchmark > 0:
		return a.Benchmark(ctx, os.Stdin)
	case a.opts.Query != "":
		return a.Batch(ctx, os.Stdin, os.Stdout)
	case !term.IsTerminal(int(os.Stdout.Fd())):
		// No terminal to draw on; print the list instead.
		return a.Batch(ctx, os.Stdin, os.Stdout)
	default:
		return a.Interactive(ctx, os.Stdin, os.Stdout)
	}
}

// Batch ranks everything read from in against the query and prints the
// best results to out, one per line.
func (a *App) Batch(ctx context.Context, in io.Reader, out io.Writer) int {
	candidates, err := source.ReadLines(in)
	if err != nil {
		return a.fail("reading candidates", err)
	}

	results, err := a.searcher.Rank(ctx, a.opts.Query, candidates)
	if err != nil {
		return a.fail("ranking", err)
	}
	a.log.Debug("ranked %d of %d candidates", len(results), len(candidates))

	if len(results) == 0 {
		return ExitFailure
	}

	limit := min(a.cfg.Lines, len(results))
	for _, r := range results[:limit] {
		if a.cfg.ShowScores {
			fmt.Fprintf(out, "%s%s\n", tui.FormatScore(r.Score), r.Text)
		} else {
			fmt.Fprintln(out, r.Text)
		}
	}
	return ExitOK
}

// Benchmark reruns the ranking opts.Benchmark times without printing
// results, for timing against large inputs.
func (a *App) Benchmark(ctx context.Context, in io.Reader) int {
	if a.opts.Query == "" {
		fmt.Fprintln(a.stderr, "Error: benchmark requires a query (-q)")
		return ExitUsage
	}

	candidates, err := source.ReadLines(in)
	if err != nil {
		return a.fail("reading candidates", err)
	}

	for i := 0; i < a.opts.Benchmark; i++ {
		if _, err := a.searcher.Rank(ctx, a.opts.Query, candidates); err != nil {
			return a.fail("ranking", err)
		}
	}
	a.log.Info("benchmarked %d runs over %d candidates", a.opts.Benchmark, len(candidates))
	return ExitOK
}

// Interactive runs the full screen picker over the candidates from in
// and prints the confirmed selection to out.
func (a *App) Interactive(ctx context.Context, in io.Reader, out io.Writer) int {
	candidates, err := source.ReadLines(in)
	if err != nil {
		return a.fail("reading candidates", err)
	}

	screen, err := newScreen()
	if err != nil {
		return a.fail("opening terminal", err)
	}
	if err := screen.Init(); err != nil {
		return a.fail("initializing terminal", err)
	}

	picker := tui.New(screen, a.searcher, candidates, tui.Options{
		Prompt:     a.cfg.Prompt,
		Lines:      a.cfg.Lines,
		ShowScores: a.cfg.ShowScores,
		Theme:      tui.NewTheme(a.cfg.Highlight),
	})

	selected, ok, err := picker.Run(ctx)
	screen.Fini()
	if err != nil {
		return a.fail("picker", err)
	}
	if !ok {
		return ExitAborted
	}

	fmt.Fprintln(out, selected)
	return ExitOK
}

func (a *App) fail(what string, err error) int {
	a.log.Error("%s: %v", what, err)
	fmt.Fprintf(a.stderr, "Error: %s: %v\n", what, err)
	return ExitFailure
}

// newScreen opens a tcell screen. Candidates usually arrive on a pipe,
// so when stdin is not a terminal the screen talks to the controlling
// tty directly.
func newScreen() (tcell.Screen, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return tcell.NewScreen()
	}
	tty, err := tcell.NewDevTty()
	if err != nil {
		return nil, err
	}
	return tcell.NewTerminfoScreenFromTty(tty)
}
