package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

var (
	level = new(slog.LevelVar)
	log   = New(os.Stderr, nil)
)

func init() {
	level.Set(slog.LevelWarn)
}

// Toggle switches debug logging on or off.
func Toggle(verbose bool) {
	if verbose {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelWarn)
}

// New builds a logger writing text records to terminal and, when sink is not
// nil, JSON records to sink.
func New(terminal io.Writer, sink io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{
		slog.NewTextHandler(terminal, opts),
	}
	if sink != nil {
		handlers = append(handlers, slog.NewJSONHandler(sink, opts))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

// Setup replaces the package logger. It returns a function closing the log
// file, if any.
func Setup(terminal io.Writer, logFile string) (func() error, error) {
	if logFile == "" {
		log = New(terminal, nil)
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log = New(terminal, f)
	return f.Close, nil
}

func Enabled(l slog.Level) bool {
	return log.Enabled(context.Background(), l)
}

func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	log.Error(msg, args...)
}
