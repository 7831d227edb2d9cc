package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const FieldRunID = "run_id"

type implLogger struct {
	logger zerolog.Logger
}

// New creates a Logger writing human-readable lines to stdout
func New(level string) Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter creates a Logger writing console-formatted lines to w
func NewWithWriter(level string, w io.Writer) Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
	}
	return &implLogger{
		logger: zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Logger(),
	}
}

// parseLevel maps a config level name to zerolog, defaulting to info
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *implLogger) shouldLog(level zerolog.Level) bool {
	return level >= l.logger.GetLevel()
}

func (l *implLogger) event(ctx context.Context, level zerolog.Level) *zerolog.Event {
	if !l.shouldLog(level) {
		return nil
	}
	e := l.logger.WithLevel(level)
	if id := RunID(ctx); id != "" {
		e = e.Str(FieldRunID, id)
	}
	return e
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if e := l.event(ctx, zerolog.DebugLevel); e != nil {
		e.Msgf(msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if e := l.event(ctx, zerolog.InfoLevel); e != nil {
		e.Msgf(msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if e := l.event(ctx, zerolog.WarnLevel); e != nil {
		e.Msgf(msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if e := l.event(ctx, zerolog.ErrorLevel); e != nil {
		e.Msgf(msg, args...)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Nop returns a Logger that discards everything
func Nop() Logger {
	return &implLogger{logger: zerolog.Nop()}
}
