package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/lecture-digest/internal/transcriber"
)

// FileStem returns the file name without directory or extension.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputDir returns "<stem> Output" under root.
func OutputDir(root, audioPath string) string {
	return filepath.Join(root, FileStem(audioPath)+" Output")
}

// ensureOutputDir creates dir if needed and logs only when it was created
func (p *implPipeline) ensureOutputDir(ctx context.Context, dir string) error {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}
	p.logger.Info(ctx, "Created Output Folder named %s.", dir)
	return nil
}

// writeText replaces the file at path with text
func writeText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// writeSegments stores segments as JSON indented with four spaces
func writeSegments(path string, segments []transcriber.Segment) error {
	if segments == nil {
		segments = []transcriber.Segment{}
	}
	data, err := json.MarshalIndent(segments, "", "    ")
	if err != nil {
		return fmt.Errorf("encode segments: %w", err)
	}
	return writeText(path, string(data))
}
