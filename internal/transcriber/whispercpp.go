package transcriber

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/lecture-digest/internal/config"
	"github.com/nguyentantai21042004/lecture-digest/internal/logger"
	"github.com/nguyentantai21042004/lecture-digest/pkg/executor"
)

type implWhisperCpp struct {
	cfg      config.WhisperConfig
	model    config.ModelName
	executor executor.Executor
	logger   logger.Logger
	console  io.Writer
}

// NewWhisperCpp creates a Transcriber that runs the whisper.cpp CLI locally.
func NewWhisperCpp(cfg config.WhisperConfig, model config.ModelName, exec executor.Executor, log logger.Logger) Transcriber {
	return &implWhisperCpp{
		cfg:      cfg,
		model:    model,
		executor: exec,
		logger:   log,
		console:  os.Stdout,
	}
}

// modelPath resolves a model variant to its ggml file, e.g. models/ggml-base.en.bin
func (w *implWhisperCpp) modelPath() string {
	return filepath.Join(w.cfg.ModelDir, "ggml-"+string(w.model)+".bin")
}

// Transcribe converts audioPath to WAV and runs whisper.cpp with JSON output
func (w *implWhisperCpp) Transcribe(ctx context.Context, audioPath string, opts Options) (*Result, error) {
	workDir, err := os.MkdirTemp(w.cfg.TempDir, "whisper-*")
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	defer w.cleanupDir(ctx, workDir)

	wavPath, err := w.extractAudio(ctx, audioPath, workDir)
	if err != nil {
		return nil, err
	}

	outputPrefix := filepath.Join(workDir, "transcript")

	// -oj: JSON output, -ojf: include per-token records (needed for words)
	// -np: no prints other than results
	args := []string{
		"-m", w.modelPath(),
		"-f", wavPath,
		"-l", languageCode(opts.Language),
		"-t", strconv.Itoa(w.cfg.Threads),
		"-oj",
		"-of", outputPrefix,
	}
	if opts.WordTimestamps {
		args = append(args, "-ojf")
	}

	w.logger.Info(ctx, "Transcribing with whisper.cpp model %s (%d threads): %s", w.model, w.cfg.Threads, audioPath)

	if opts.Verbose {
		err = w.executor.Stream(ctx, w.console, w.cfg.BinaryPath, args...)
	} else {
		_, err = w.executor.Execute(ctx, w.cfg.BinaryPath, append(args, "-np")...)
	}
	if err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".json")
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	result, err := parseWhisperCppJSON(data, opts.WordTimestamps)
	if err != nil {
		return nil, err
	}

	w.logger.Info(ctx, "Transcription completed: %d segments", len(result.Segments))
	return result, nil
}

// extractAudio converts the input to 16kHz mono 16-bit PCM WAV, the only
// format whisper.cpp reads
func (w *implWhisperCpp) extractAudio(ctx context.Context, audioPath, workDir string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	wavPath := filepath.Join(workDir, base+"_16k.wav")

	args := []string{
		"-i", audioPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		wavPath,
	}

	w.logger.Debug(ctx, "Converting audio to 16kHz WAV: %s", audioPath)
	if _, err := w.executor.Execute(ctx, w.cfg.FFmpegPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert audio: %w", err)
	}
	return wavPath, nil
}

// cleanupDir removes the work directory, logs warning if it fails
func (w *implWhisperCpp) cleanupDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		w.logger.Warn(ctx, "Failed to cleanup work dir %s: %v", dir, err)
	} else {
		w.logger.Debug(ctx, "Cleaned up work dir: %s", dir)
	}
}
