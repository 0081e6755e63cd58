package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Debug("sanitized", zap.String("input", "a:b"), zap.String("output", "a!b"))
	_ = logger.Sync()

	out := buf.String()
	if !strings.Contains(out, "sanitized") {
		t.Fatalf("debug message missing from verbose output: %q", out)
	}
	if !strings.Contains(out, "a!b") {
		t.Errorf("field missing from verbose output: %q", out)
	}
}

func TestNew_Quiet(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug("sanitized")
	logger.Info("loaded config")
	_ = logger.Sync()

	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn level, got %q", buf.String())
	}

	logger.Warn("config file ignored", zap.String("path", "/tmp/x.toml"))
	_ = logger.Sync()

	out := buf.String()
	if !strings.Contains(out, `"msg":"config file ignored"`) {
		t.Errorf("warn message missing or not JSON: %q", out)
	}
	if !strings.Contains(out, `"path":"/tmp/x.toml"`) {
		t.Errorf("field missing: %q", out)
	}
}
