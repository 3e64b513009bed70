package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "synth")

	logger.Info("hello %s", "world")

	out := buf.String()
	for _, want := range []string{"[INFO]", "[synth]", "hello world"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("log line not newline terminated")
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "")
	logger.SetLevel(LogLevelWarn)

	logger.Debug("quiet")
	logger.Info("quiet")
	logger.Warn("loud")
	logger.Error("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Error("below-level messages were written")
	}
	if strings.Count(out, "loud") != 2 {
		t.Errorf("expected 2 messages, got output %q", out)
	}
}

func TestLoggerOff(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "")
	logger.SetLevel(LogLevelOff)

	logger.Error("nope")
	if buf.Len() > 0 {
		t.Error("LogLevelOff still wrote output")
	}
}

func TestPackageLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(&bytes.Buffer{})
	SetLevel(LogLevelDebug)
	SetPrefix("flp")

	Debug("boundary detail")

	out := buf.String()
	if !strings.Contains(out, "[flp]") || !strings.Contains(out, "boundary detail") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevelFatal, "FATAL"},
		{LogLevel(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
