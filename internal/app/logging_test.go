package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
		{"", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	log.Debug("hidden debug")
	log.Info("hidden info")
	log.Warn("shown warn")
	log.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "shown error") {
		t.Errorf("output missing expected messages: %q", out)
	}
}

func TestLoggerFieldsAndPrefix(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf, Prefix: "fzyr"})

	log.WithComponent("search").WithField("candidates", 120).Info("ranked")

	out := buf.String()
	for _, want := range []string{"[INFO]", "fzyr:", "ranked", "component=search", "candidates=120"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLoggerFormatsArgs(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})

	log.Info("scored %d in %s", 7, "batch")
	if !strings.Contains(buf.String(), "scored 7 in batch") {
		t.Errorf("output = %q, want formatted message", buf.String())
	}
}

func TestNullLoggerIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NullLogger.SetOutput(&buf)
	NullLogger.Error("should not appear")
	if buf.Len() != 0 {
		t.Errorf("NullLogger wrote %q", buf.String())
	}
}

func TestNewLoggerFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fzyr.log")
	t.Setenv("FZYR_LOG", path)
	t.Setenv("FZYR_LOG_LEVEL", "debug")

	log := NewLoggerFromEnv()
	log.Debug("hello from env logger")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from env logger") {
		t.Errorf("log file contents = %q", data)
	}
}
