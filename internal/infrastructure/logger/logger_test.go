package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewParsesLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		log := New(Config{Level: tt.level, Format: "json"})
		if got := log.GetLevel(); got != tt.want {
			t.Errorf("level %q: got %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestNewFallsBackToInfo(t *testing.T) {
	log := New(Config{Level: "verbose", Format: "json"})
	if got := log.GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("expected info fallback, got %v", got)
	}
}

func TestNewConsoleFormat(t *testing.T) {
	// Console format must still produce a usable logger.
	log := New(Config{Level: "info", Format: "console"})
	log.Info().Msg("started")
}
