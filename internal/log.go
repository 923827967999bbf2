package internal

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// LogLevel controls logger verbosity
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

// ParseLogLevel maps a config string to a level, defaulting to info
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogDebug
	case "warn", "warning":
		return LogWarn
	case "error":
		return LogError
	default:
		return LogInfo
	}
}

// Logger is a leveled logger writing to stderr
type Logger struct {
	level LogLevel
	out   *log.Logger
}

// NewLogger creates a logger at the given level
func NewLogger(level LogLevel) *Logger {
	return &Logger{
		level: level,
		out:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *Logger) logf(level LogLevel, tag, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf("%s %s", tag, fmt.Sprintf(format, args...))
}

// Debug logs at debug level
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LogDebug, "DEBUG", format, args...)
}

// Info logs at info level
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LogInfo, "INFO ", format, args...)
}

// Warn logs at warn level
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LogWarn, "WARN ", format, args...)
}

// Error logs at error level
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LogError, "ERROR", format, args...)
}
