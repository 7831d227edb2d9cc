package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/lecture-digest/internal/logger"
)

// audioExtensions are the containers ffmpeg and the OpenAI API both accept
var audioExtensions = []string{".mp3", ".wav", ".m4a", ".flac", ".ogg", ".mp4", ".webm", ".mpeg", ".mpga", ".aac"}

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	sem           *semaphore
	settleDelay   time.Duration
	wg            sync.WaitGroup
}

// Start begins monitoring the input directory for new audio files
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(audioExtensions, ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isAudioFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New audio detected: %s", event.Name)

			// Small delay to ensure file is fully written
			select {
			case <-time.After(w.settleDelay):
			case <-ctx.Done():
				continue
			}

			// Blocks while maxConcurrent files are in flight
			if err := w.sem.acquire(ctx); err != nil {
				continue
			}
			w.wg.Add(1)
			go func(filePath string) {
				defer w.wg.Done()
				defer w.sem.release()

				if err := w.handler(ctx, filePath); err != nil {
					w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
				}
			}(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isAudioFile checks if the file has a supported audio extension
func isAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range audioExtensions {
		if ext == format {
			return true
		}
	}
	return false
}
