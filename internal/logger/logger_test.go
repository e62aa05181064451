package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := New(tt.level, true).GetLevel(); got != tt.want {
				t.Errorf("New(%q).GetLevel() = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Str("file", "march.pdf").Msg("statement parsed")

	output := buf.String()
	if !strings.Contains(output, "statement parsed") || !strings.Contains(output, `"file":"march.pdf"`) {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf))

	log := FromContext(ctx)
	log.Info().Msg("test")

	if buf.Len() == 0 {
		t.Error("Expected log output from retrieved logger")
	}
}

func TestFromContext_Default(t *testing.T) {
	log := FromContext(context.Background())
	if log.GetLevel() != zerolog.Disabled {
		t.Errorf("default logger level = %v, want disabled", log.GetLevel())
	}
}

func TestWithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := WithFields(NewWithWriter(buf), map[string]interface{}{
		"request_id": "abc",
		"count":      3,
	})

	log.Info().Msg("test")

	output := buf.String()
	if !strings.Contains(output, `"request_id":"abc"`) || !strings.Contains(output, `"count":3`) {
		t.Errorf("fields missing from output: %s", output)
	}
}
