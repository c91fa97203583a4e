package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// DefaultLogPath is where the TUI writes its log, since it owns the terminal
const DefaultLogPath = "/tmp/slotpick.out"

// Logger provides a centralized logging mechanism for slotpick
type Logger struct {
	zl   zerolog.Logger
	file *os.File
	mu   sync.Mutex
}

var (
	defaultLogger = &Logger{zl: zerolog.Nop()}
	defaultMu     sync.RWMutex
)

// GetLogger returns the process-wide logger. Until Init is called it discards everything.
func GetLogger() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Init replaces the process-wide logger with one writing to logPath.
// If the file cannot be opened it falls back to stderr.
func Init(logPath string, verbose bool) *Logger {
	logger, err := NewLogger(logPath, verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log file, falling back to stderr: %v\n", err)
		logger = NewWriterLogger(os.Stderr, verbose)
	}

	defaultMu.Lock()
	previous := defaultLogger
	defaultLogger = logger
	defaultMu.Unlock()

	previous.Close()
	return logger
}

// NewLogger creates a new logger that appends to the specified file
func NewLogger(logPath string, verbose bool) (*Logger, error) {
	dir := filepath.Dir(logPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := NewWriterLogger(file, verbose)
	logger.file = file
	return logger, nil
}

// NewWriterLogger creates a logger on an arbitrary writer
func NewWriterLogger(w io.Writer, verbose bool) *Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zl := zerolog.New(w).Level(level).With().Timestamp().Caller().Logger()
	return &Logger{zl: zl}
}

// log writes one event. skip is the number of frames between the caller and log itself.
func (l *Logger) log(level zerolog.Level, skip int, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl.WithLevel(level).CallerSkipFrame(skip).Msgf(format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(zerolog.DebugLevel, 2, format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(zerolog.InfoLevel, 2, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.log(zerolog.WarnLevel, 2, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(zerolog.ErrorLevel, 2, format, args...)
}

// Close closes the log file (if any)
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Convenience functions for the default logger

func Debug(format string, args ...interface{}) {
	GetLogger().log(zerolog.DebugLevel, 2, format, args...)
}

func Info(format string, args ...interface{}) {
	GetLogger().log(zerolog.InfoLevel, 2, format, args...)
}

func Warning(format string, args ...interface{}) {
	GetLogger().log(zerolog.WarnLevel, 2, format, args...)
}

func Error(format string, args ...interface{}) {
	GetLogger().log(zerolog.ErrorLevel, 2, format, args...)
}
