package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/fadedpez/blackjack/internal/types"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

var charmLevels = map[Level]log.Level{
	DEBUG: log.DebugLevel,
	INFO:  log.InfoLevel,
	WARN:  log.WarnLevel,
	ERROR: log.ErrorLevel,
}

// String returns the level name
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel converts a level name such as "debug" or "WARN" into a Level
func ParseLevel(name string) (Level, error) {
	for level, levelName := range levelNames {
		if strings.EqualFold(levelName, strings.TrimSpace(name)) {
			return level, nil
		}
	}
	return INFO, fmt.Errorf("unknown log level %q", name)
}

// Logger is a leveled key/value logger
type Logger struct {
	base  *log.Logger
	level Level
}

// NewLogger creates a new logger writing to stderr. Stdout belongs to the
// console renderer.
func NewLogger(level Level) *Logger {
	return NewLoggerWithWriter(os.Stderr, level)
}

// NewLoggerWithWriter creates a new logger writing to w
func NewLoggerWithWriter(w io.Writer, level Level) *Logger {
	base := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05.000",
		ReportCaller:    true,
		Level:           charmLevels[level],
	})
	return &Logger{base: base, level: level}
}

// Level returns the minimum level that is written
func (l *Logger) Level() Level {
	return l.level
}

// SetLevel changes the minimum level that is written
func (l *Logger) SetLevel(level Level) {
	l.level = level
	l.base.SetLevel(charmLevels[level])
}

// With returns a child logger that adds keyvals to every entry
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{base: l.base.With(keyvals...), level: l.level}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	l.base.Helper()
	l.base.Debug(msg, keyvals...)
}

// Info logs an info message
func (l *Logger) Info(msg string, keyvals ...interface{}) {
	l.base.Helper()
	l.base.Info(msg, keyvals...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	l.base.Helper()
	l.base.Warn(msg, keyvals...)
}

// Error logs an error message
func (l *Logger) Error(msg string, keyvals ...interface{}) {
	l.base.Helper()
	l.base.Error(msg, keyvals...)
}

// LogError logs a GameError with appropriate context
func (l *Logger) LogError(err error) {
	l.base.Helper()

	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		keyvals := []interface{}{"code", string(gameErr.Code), "message", gameErr.Message}
		if gameErr.Err != nil {
			keyvals = append(keyvals, "cause", gameErr.Err.Error())
		}
		l.base.Error("Game error occurred", keyvals...)
		return
	}
	l.base.Error("Unexpected error", "err", err)
}

// Default logger instance
var Default = NewLogger(INFO)
