package utils

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"
)

// Level is the minimum severity a Logger emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps "debug", "info", "warn" or "error" to a Level.
// Unknown names fall back to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger provides leveled logging throughout the application.
type Logger struct {
	out   *log.Logger
	err   *log.Logger
	level Level
	color bool
}

// NewLogger creates a Logger writing info/debug/warn to out and errors
// to errOut.
func NewLogger(out, errOut io.Writer, level Level, color bool) *Logger {
	return &Logger{
		out:   log.New(out, "", 0),
		err:   log.New(errOut, "", 0),
		level: level,
		color: color,
	}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return NewLogger(io.Discard, io.Discard, LevelError+1, false)
}

func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) tag(name, ansi string) string {
	if !l.color {
		return fmt.Sprintf("%-5s", name)
	}
	return fmt.Sprintf("\033[%sm%-5s\033[0m", ansi, name)
}

func (l *Logger) emit(dst *log.Logger, lvl Level, tag, format string, args ...any) {
	if lvl < l.level {
		return
	}
	dst.Printf("[%s] %s %s", l.timestamp(), tag, fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...any) {
	l.emit(l.out, LevelInfo, l.tag("INFO", "32"), format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.emit(l.out, LevelWarn, l.tag("WARN", "33"), format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.emit(l.err, LevelError, l.tag("ERROR", "31"), format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.emit(l.out, LevelDebug, l.tag("DEBUG", "36"), format, args...)
}
