// Package config loads fzyr settings.
//
// Settings are layered, later layers winning: built-in defaults, then the
// optional JSON config file, then FZYR_* environment variables. Flags are
// applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/jmaargh/fzyr/internal/score"
)

// ErrInvalid reports a config file that is not valid JSON.
var ErrInvalid = errors.New("config: not valid JSON")

// Config holds every user-tunable setting.
type Config struct {
	// Prompt is shown before the query in interactive mode.
	Prompt string

	// Lines is the maximum number of results displayed or printed.
	Lines int

	// Workers caps the parallel scoring workers.
	Workers int

	// ShowScores prefixes each result with its numeric score.
	ShowScores bool

	// Highlight is the hex color (e.g. "#00afff") for matched runes in
	// interactive mode. An empty or unparsable value falls back to
	// reverse video.
	Highlight string

	// Tuning holds the scoring weights.
	Tuning score.Tuning
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Prompt:  "> ",
		Lines:   10,
		Workers: 4,
		Tuning:  score.DefaultTuning(),
	}
}

// DefaultPath returns the standard config file location
// (e.g. ~/.config/fzyr/config.json).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locating config dir: %w", err)
	}
	return filepath.Join(dir, "fzyr", "config.json"), nil
}

// Load builds the effective configuration: defaults, overlaid with the
// file at path when it exists, overlaid with FZYR_* environment
// variables. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("config: reading %s: %w", path, err)
		default:
			if err := applyJSON(data, &cfg); err != nil {
				return cfg, fmt.Errorf("%w: %s", err, path)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg as JSON to path, creating parent directories as needed.
func (c Config) Save(path string) error {
	out := []byte("{}")
	var err error
	for _, field := range []struct {
		path  string
		value any
	}{
		{"prompt", c.Prompt},
		{"lines", c.Lines},
		{"workers", c.Workers},
		{"show_scores", c.ShowScores},
		{"ui.highlight", c.Highlight},
		{"score.gap_leading", c.Tuning.GapLeading},
		{"score.gap_trailing", c.Tuning.GapTrailing},
		{"score.gap_inner", c.Tuning.GapInner},
		{"score.match_consecutive", c.Tuning.MatchConsecutive},
		{"score.match_slash", c.Tuning.MatchSlash},
		{"score.match_word", c.Tuning.MatchWord},
		{"score.match_capital", c.Tuning.MatchCapital},
		{"score.match_dot", c.Tuning.MatchDot},
	} {
		out, err = sjson.SetBytes(out, field.path, field.value)
		if err != nil {
			return fmt.Errorf("config: encoding %s: %w", field.path, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: creating config dir: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// applyJSON overlays values found in data onto cfg. Unknown keys are
// ignored; absent keys leave the current value alone.
func applyJSON(data []byte, cfg *Config) error {
	if !gjson.ValidBytes(data) {
		return ErrInvalid
	}

	if v := gjson.GetBytes(data, "prompt"); v.Exists() {
		cfg.Prompt = v.String()
	}
	if v := gjson.GetBytes(data, "lines"); v.Exists() {
		if n := int(v.Int()); n > 0 {
			cfg.Lines = n
		}
	}
	if v := gjson.GetBytes(data, "workers"); v.Exists() {
		if n := int(v.Int()); n > 0 {
			cfg.Workers = n
		}
	}
	if v := gjson.GetBytes(data, "show_scores"); v.Exists() {
		cfg.ShowScores = v.Bool()
	}
	if v := gjson.GetBytes(data, "ui.highlight"); v.Exists() {
		cfg.Highlight = v.String()
	}

	tuning := map[string]*float64{
		"score.gap_leading":       &cfg.Tuning.GapLeading,
		"score.gap_trailing":      &cfg.Tuning.GapTrailing,
		"score.gap_inner":         &cfg.Tuning.GapInner,
		"score.match_consecutive": &cfg.Tuning.MatchConsecutive,
		"score.match_slash":       &cfg.Tuning.MatchSlash,
		"score.match_word":        &cfg.Tuning.MatchWord,
		"score.match_capital":     &cfg.Tuning.MatchCapital,
		"score.match_dot":         &cfg.Tuning.MatchDot,
	}
	for path, dst := range tuning {
		if v := gjson.GetBytes(data, path); v.Exists() {
			*dst = v.Float()
		}
	}
	return nil
}

// envPaths maps environment variables onto config file paths, so the env
// overlay flows through the same parsing as the file itself.
var envPaths = map[string]string{
	"FZYR_PROMPT":      "prompt",
	"FZYR_LINES":       "lines",
	"FZYR_WORKERS":     "workers",
	"FZYR_SHOW_SCORES": "show_scores",
	"FZYR_HIGHLIGHT":   "ui.highlight",
}

func applyEnv(cfg *Config) error {
	overlay := []byte("{}")
	found := false
	var err error
	for env, path := range envPaths {
		if val, ok := os.LookupEnv(env); ok {
			overlay, err = sjson.SetBytes(overlay, path, val)
			if err != nil {
				return fmt.Errorf("config: encoding %s: %w", env, err)
			}
			found = true
		}
	}
	if !found {
		return nil
	}
	return applyJSON(overlay, cfg)
}
