package pipeline

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInputNotFound reports an input path that is empty, missing or a directory.
var ErrInputNotFound = errors.New("input file not found")

// ResolveInput cleans a user-typed path and checks that it exists.
// Surrounding whitespace and double quotes (as left by drag-and-drop or
// "copy as path") are stripped.
func ResolveInput(raw string) (string, error) {
	path := strings.Trim(strings.TrimSpace(raw), `"`)
	if path == "" {
		return "", ErrInputNotFound
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return "", fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrInputNotFound, path)
	}
	return path, nil
}
