package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Logger provides a centralized logging mechanism for minigrep
type Logger struct {
	debugLogger   *log.Logger
	infoLogger    *log.Logger
	warningLogger *log.Logger
	errorLogger   *log.Logger
	file          *os.File
	verbose       bool
	mu            sync.Mutex
}

var (
	defaultLogger *Logger
	defaultMu     sync.Mutex
)

// GetLogger returns the default logger, falling back to stderr if Configure was never called
func GetLogger() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = NewWriterLogger(os.Stderr, false)
	}
	return defaultLogger
}

// Configure replaces the default logger with one writing to logPath.
// If the file cannot be opened the default logger writes to stderr instead.
func Configure(logPath string, verbose bool) *Logger {
	logger, err := NewLogger(logPath, verbose)
	if err != nil {
		log.Printf("Failed to create log file, falling back to stderr: %v", err)
		logger = NewWriterLogger(os.Stderr, verbose)
	}

	defaultMu.Lock()
	previous := defaultLogger
	defaultLogger = logger
	defaultMu.Unlock()

	if previous != nil {
		previous.Close()
	}
	return logger
}

// NewLogger creates a new logger that writes to the specified file
func NewLogger(logPath string, verbose bool) (*Logger, error) {
	// Ensure the directory exists
	dir := filepath.Dir(logPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open or create the log file
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := NewWriterLogger(file, verbose)
	logger.file = file
	return logger, nil
}

// NewWriterLogger creates a logger writing to w. It does not own w.
func NewWriterLogger(w io.Writer, verbose bool) *Logger {
	return &Logger{
		debugLogger:   log.New(w, "[DEBUG] ", log.LstdFlags),
		infoLogger:    log.New(w, "[INFO] ", log.LstdFlags),
		warningLogger: log.New(w, "[WARN] ", log.LstdFlags),
		errorLogger:   log.New(w, "[ERROR] ", log.LstdFlags),
		verbose:       verbose,
	}
}

// Debug logs a debug message; dropped unless the logger is verbose
func (l *Logger) Debug(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.verbose {
		return
	}
	l.debugLogger.Printf(format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infoLogger.Printf(format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warningLogger.Printf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errorLogger.Printf(format, args...)
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
	GetLogger().Debug(format, args...)
}

func Info(format string, args ...interface{}) {
	GetLogger().Info(format, args...)
}

func Warning(format string, args ...interface{}) {
	GetLogger().Warning(format, args...)
}

func Error(format string, args ...interface{}) {
	GetLogger().Error(format, args...)
}
