package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInit_WritesComponentAndRespectsLevel(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "warn", Output: &buf, Component: "cli"})

	log.Info().Msg("hidden")
	log.Warn().Str("team_id", "t1").Msg("shown")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected exactly one JSON entry, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "shown" || entry["component"] != "cli" || entry["team_id"] != "t1" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestInit_OnlyFirstCallApplies(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Output: &first})
	l := Init(Options{Output: &second})
	l.Info().Msg("hello")

	if first.Len() == 0 || second.Len() != 0 {
		t.Fatalf("second Init must reuse the first logger")
	}
}

func TestGet_BeforeInitIsDisabled(t *testing.T) {
	Reset()
	if got := Get(); got.GetLevel() != zerolog.Disabled {
		t.Fatalf("expected disabled logger before Init, got %v", got.GetLevel())
	}
}
