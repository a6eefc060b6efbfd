package logger_test

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"healthlog/internal/platform/logger"
)

func TestNewHonoursLevel(t *testing.T) {
	t.Parallel()
	for _, format := range []string{"json", "console"} {
		log, err := logger.New("warn", format)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if log.Core().Enabled(zapcore.InfoLevel) || !log.Core().Enabled(zapcore.WarnLevel) {
			t.Fatalf("%s: expected warn threshold", format)
		}
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()
	if _, err := logger.New("loud", "json"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
