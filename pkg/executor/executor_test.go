package executor

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	out, err := New().Execute(context.Background(), "sh", "-c", "printf hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "hello" {
		t.Errorf("Execute() = %q, want %q", out, "hello")
	}
}

func TestExecuteIncludesStderr(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	_, err := New().Execute(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("Execute() should fail for non-zero exit")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Execute() error = %v, want stderr in message", err)
	}
}

func TestStream(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	var buf bytes.Buffer
	if err := New().Stream(context.Background(), &buf, "sh", "-c", "echo one; echo two"); err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	if buf.String() != "one\ntwo\n" {
		t.Errorf("Stream() wrote %q, want %q", buf.String(), "one\ntwo\n")
	}
}
