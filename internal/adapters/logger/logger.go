// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"go.trai.ch/importa/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
// Human-readable output goes through a charmbracelet/log handler; JSON output through slog's own handler.
type Logger struct {
	logger *slog.Logger
	out    io.Writer
	json   bool
	mu     sync.RWMutex
}

// New creates a new Logger writing human-readable lines to stderr.
func New() *Logger {
	l := &Logger{out: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.rebuild()
}

// SetJSON switches between JSON lines and human-readable output.
func (l *Logger) SetJSON(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.json = enabled
	l.rebuild()
}

// rebuild replaces the slog handler. Callers hold the write lock, or own l exclusively.
func (l *Logger) rebuild() {
	var handler slog.Handler
	if l.json {
		handler = slog.NewJSONHandler(l.out, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = log.NewWithOptions(l.out, log.Options{Level: log.InfoLevel})
	}
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with the metadata of every zerr in its chain as attributes.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	zerr.Log(context.Background(), l.logger, err)
}
