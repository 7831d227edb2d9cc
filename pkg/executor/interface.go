package executor

import (
	"context"
	"io"
)

// Executor defines the interface for executing external commands
type Executor interface {
	// Execute runs name with args and returns its captured stdout.
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// Stream runs name with args, copying stdout to w as it is produced.
	Stream(ctx context.Context, w io.Writer, name string, args ...string) error
}
