// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	defer Init(DefaultConfig())

	Init(Config{Level: "debug", Output: &buf})
	l := Logger()
	l.Debug().Str("table", "jobs").Msg("statement prepared")

	output := buf.String()
	for _, want := range []string{`"level":"debug"`, `"table":"jobs"`, `"message":"statement prepared"`, `"time":`} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %s in output, got: %s", want, output)
		}
	}
}

func TestInit_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	defer Init(DefaultConfig())

	Init(Config{Level: "warn", Output: &buf})
	Info().Msg("hidden")
	Warn().Msg("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("Expected info entry to be filtered, got: %s", output)
	}
	if !strings.Contains(output, "shown") {
		t.Errorf("Expected warn entry, got: %s", output)
	}
}

func TestInit_Console(t *testing.T) {
	var buf bytes.Buffer
	defer Init(DefaultConfig())

	Init(Config{Format: "console", Output: &buf})
	Info().Msg("Starting Jobly")

	if strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), "Starting Jobly") {
		t.Errorf("Expected console-formatted entry, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}
}
