// Package main is the entry point for the fzyr fuzzy finder.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmaargh/fzyr/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return app.ExitFailure
	}

	// Handle signals for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	return application.Run(ctx)
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.Query, "query", "", "Rank candidates against this query and print the best")
	flag.StringVar(&opts.Query, "q", "", "Rank candidates against this query and print the best (shorthand)")
	flag.IntVar(&opts.Lines, "lines", 0, "Maximum results to show (default 10)")
	flag.IntVar(&opts.Lines, "l", 0, "Maximum results to show (shorthand)")
	flag.StringVar(&opts.Prompt, "prompt", "", "Interactive prompt string (default \"> \")")
	flag.StringVar(&opts.Prompt, "p", "", "Interactive prompt string (shorthand)")
	flag.BoolVar(&opts.ShowScores, "show-scores", false, "Print scores alongside results")
	flag.BoolVar(&opts.ShowScores, "s", false, "Print scores alongside results (shorthand)")
	flag.IntVar(&opts.Workers, "workers", 0, "Maximum parallel scoring workers (default 4)")
	flag.IntVar(&opts.Workers, "j", 0, "Maximum parallel scoring workers (shorthand)")
	flag.IntVar(&opts.Benchmark, "benchmark", 0, "Repeat the ranking N times without printing, for timing")
	flag.IntVar(&opts.Benchmark, "b", 0, "Repeat the ranking N times without printing (shorthand)")
	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "fzyr - fuzzy text selector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: fzyr [options] < candidates\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  find . -type f | fzyr             Pick a file interactively\n")
		fmt.Fprintf(os.Stderr, "  find . -type f | fzyr -q main     Print the best matches for \"main\"\n")
		fmt.Fprintf(os.Stderr, "  fzyr -s -q conf < paths.txt       Show scores alongside matches\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("fzyr %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.Lines < 0 || opts.Workers < 0 || opts.Benchmark < 0 {
		fmt.Fprintln(os.Stderr, "Error: -lines, -workers and -benchmark must not be negative")
		os.Exit(app.ExitUsage)
	}

	return opts
}
