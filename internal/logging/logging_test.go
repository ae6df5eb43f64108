package logging

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		verbose   bool
		wantDebug bool
	}{
		{verbose: true, wantDebug: true},
		{verbose: false, wantDebug: false},
	}

	for _, tt := range tests {
		logger := NewLogger(tt.verbose)
		if logger == nil || logger.SugaredLogger == nil {
			t.Fatalf("NewLogger(%v) returned nil logger", tt.verbose)
		}
		got := logger.Desugar().Core().Enabled(zapcore.DebugLevel)
		if got != tt.wantDebug {
			t.Errorf(
				"NewLogger(%v): expected debug enabled %v, got %v",
				tt.verbose,
				tt.wantDebug,
				got,
			)
		}
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected nop logger to have every level disabled")
	}
	logger.Infow("ignored", "key", "value")
}

func TestBuildReportsConfigErrors(t *testing.T) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{
		filepath.Join(t.TempDir(), "missing", "dir", "out.log"),
	}

	var errOut bytes.Buffer
	logger := build(cfg, &errOut)
	if logger == nil || logger.SugaredLogger == nil {
		t.Fatal("expected fallback logger, got nil")
	}
	if logger.Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected fallback logger to discard everything")
	}
	if !strings.Contains(errOut.String(), "failed to build logger") {
		t.Errorf("expected build failure to be reported, got %q", errOut.String())
	}
}
