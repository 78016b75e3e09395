package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithOptionsLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		log := NewWithOptions(tt.level, "json")
		if got := log.GetLevel(); got != tt.want {
			t.Errorf("NewWithOptions(%q) level = %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestNewWithOptionsFormat(t *testing.T) {
	// Both formats must produce a usable logger at the requested level
	for _, format := range []string{"json", "pretty"} {
		log := NewWithOptions("warn", format)
		if got := log.GetLevel(); got != zerolog.WarnLevel {
			t.Errorf("format %q: level = %s, want warn", format, got)
		}
	}
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	if got := New().GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("New() level = %s, want debug", got)
	}
}
