package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyentantai21042004/lecture-digest/internal/pipeline"
)

// runInteractive asks for a file path, runs the pipeline on it and waits
// for Enter before returning. A missing file is reported and is not an error.
func runInteractive(ctx context.Context, p pipeline.Pipeline, in *bufio.Reader, out io.Writer) error {
	raw, err := prompt(in, out, "Path to File Being Transcribed: ")
	if err != nil {
		return fmt.Errorf("read input path: %w", err)
	}

	path, err := pipeline.ResolveInput(raw)
	if errors.Is(err, pipeline.ErrInputNotFound) {
		fmt.Fprintln(out, "Problem Getting File...")
		_, _ = prompt(in, out, "Press Enter to Exit...")
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := p.Run(ctx, path); err != nil {
		return err
	}

	_, _ = prompt(in, out, "Press Enter to exit...")
	return nil
}

// prompt writes label and reads one line. EOF ends the line instead of failing.
func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
