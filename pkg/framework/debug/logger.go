// Package debug provides logging, profiling and audio buffer analysis
// aids for plugin development.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel orders log messages by severity.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
	// LogLevelOff disables all output.
	LogLevelOff
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Logger writes timestamped plugin log lines. Hosts give plugins no
// console, so output normally goes to the file the wrapper configures.
// Never call it from the render path.
type Logger struct {
	mu     sync.Mutex
	w      io.Writer
	level  LogLevel
	prefix string
}

// New creates a logger filtering below the info level.
func New(w io.Writer, prefix string) *Logger {
	return &Logger{w: w, level: LogLevelInfo, prefix: prefix}
}

// SetOutput redirects the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w = w
}

// SetLevel sets the minimum severity that gets written.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetPrefix tags every line, e.g. with the plugin name.
func (l *Logger) SetPrefix(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prefix = prefix
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level || l.level == LogLevelOff {
		return
	}

	line := time.Now().Format("2006-01-02 15:04:05.000") + " [" + level.String() + "] "
	if l.prefix != "" {
		line += "[" + l.prefix + "] "
	}
	line += fmt.Sprintf(format, args...)
	if line[len(line)-1] != '\n' {
		line += "\n"
	}
	io.WriteString(l.w, line)
}

func (l *Logger) Debug(format string, args ...interface{}) { l.log(LogLevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.log(LogLevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.log(LogLevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.log(LogLevelError, format, args...) }

// std is the package logger the wrapper and plugins share.
var std = New(os.Stderr, "")

// SetOutput redirects the package logger.
func SetOutput(w io.Writer) { std.SetOutput(w) }

// SetLevel sets the package logger's minimum severity.
func SetLevel(level LogLevel) { std.SetLevel(level) }

// SetPrefix tags the package logger's lines.
func SetPrefix(prefix string) { std.SetPrefix(prefix) }

// Debug logs through the package logger.
func Debug(format string, args ...interface{}) { std.Debug(format, args...) }

// Info logs through the package logger.
func Info(format string, args ...interface{}) { std.Info(format, args...) }

// Warn logs through the package logger.
func Warn(format string, args ...interface{}) { std.Warn(format, args...) }

// Error logs through the package logger.
func Error(format string, args ...interface{}) { std.Error(format, args...) }
