package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupWithWriterFiltersByLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	logger, err := SetupWithWriter("warn", &buf)
	if err != nil {
		t.Fatalf("SetupWithWriter: %v", err)
	}

	logger.Info().Msg("hidden")
	logger.Warn().Str("video", "vid-1").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be filtered: %s", out)
	}
	if !strings.Contains(out, `"video":"vid-1"`) || !strings.Contains(out, `"level":"warn"`) {
		t.Fatalf("expected JSON warn record, got %s", out)
	}
}

func TestSetupWithWriterInstallsGlobalLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	if _, err := SetupWithWriter("debug", &buf); err != nil {
		t.Fatalf("SetupWithWriter: %v", err)
	}
	log.Debug().Msg("via global")
	if !strings.Contains(buf.String(), "via global") {
		t.Fatalf("global logger not replaced, got %q", buf.String())
	}
}

func TestSetupWritesToFile(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	path := filepath.Join(t.TempDir(), "logs", "nplay.log")
	logger, closer, err := Setup("info", path)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	logger.Info().Msg("started")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "started") {
		t.Fatalf("log file missing record: %q", data)
	}
}

func TestSetupWithoutPathDiscards(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	logger, closer, err := Setup("info", "")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	logger.Info().Msg("nowhere")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"debug", zerolog.DebugLevel, false},
		{"INFO", zerolog.InfoLevel, false},
		{"", zerolog.InfoLevel, false},
		{"warn", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"verbose", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}
