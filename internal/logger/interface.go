package logger

import "context"

// Logger is the logging surface used across the pipeline.
// Messages are printf-style; ctx carries the run ID when one is set.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
