package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command with the given arguments
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	var stdout bytes.Buffer
	if err := e.run(ctx, &stdout, name, args...); err != nil {
		return "", err
	}
	return stdout.String(), nil
}

// Stream runs an external command and forwards its stdout to w
func (e *implExecutor) Stream(ctx context.Context, w io.Writer, name string, args ...string) error {
	if w == nil {
		w = io.Discard
	}
	return e.run(ctx, w, name, args...)
}

func (e *implExecutor) run(ctx context.Context, stdout io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Include stderr in error message for debugging
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr != "" {
			return fmt.Errorf("command '%s' failed: %w\nstderr: %s", name, err, stderrStr)
		}
		return fmt.Errorf("command '%s' failed: %w", name, err)
	}

	return nil
}
