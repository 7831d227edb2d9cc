package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/lecture-digest/internal/chunker"
	"github.com/nguyentantai21042004/lecture-digest/internal/logger"
	"github.com/nguyentantai21042004/lecture-digest/internal/summarizer"
	"github.com/nguyentantai21042004/lecture-digest/internal/transcriber"
)

// Run transcribes audioPath, writes the transcript, summarizes it chunk by
// chunk and writes the optional segment and document exports.
// Any service failure aborts the run; files written so far are left in place.
func (p *implPipeline) Run(ctx context.Context, audioPath string) (*Report, error) {
	if logger.RunID(ctx) == "" {
		ctx = logger.WithRunID(ctx, uuid.NewString())
	}

	stem := FileStem(audioPath)
	report := &Report{OutputDir: OutputDir(p.output.Root, audioPath)}
	report.TranscriptPath = filepath.Join(report.OutputDir, stem+".txt")
	report.SummaryPath = filepath.Join(report.OutputDir, stem+"_summary.txt")

	p.logger.Debug(ctx, "Transcribing %s with %s", audioPath, p.model)
	startTime := time.Now()

	// Step 1: Transcribe
	result, err := p.transcriber.Transcribe(ctx, audioPath, transcriber.Options{
		Language:       p.settings.Language,
		WordTimestamps: p.settings.WordTimestamps,
		Verbose:        p.settings.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	// Step 2: Persist transcript
	if err := p.ensureOutputDir(ctx, report.OutputDir); err != nil {
		return nil, err
	}
	p.logger.Info(ctx, "Writing transcription to file...")
	if err := writeText(report.TranscriptPath, result.Text); err != nil {
		return nil, err
	}
	p.logger.Info(ctx, "Finished writing transcription file to %s", report.TranscriptPath)

	// Step 3: Chunk and summarize
	p.logger.Info(ctx, "Starting transcription summary")
	chunks := chunker.Split(result.Text, p.settings.MaxChunkLength)
	report.Chunks = len(chunks)

	parts, err := p.summarize(ctx, chunks, report.SummaryPath)
	if err != nil {
		return nil, err
	}

	// Step 4: Optional exports
	if p.settings.ExportSegments {
		report.SegmentsPath = filepath.Join(report.OutputDir, stem+".json")
		p.logger.Info(ctx, "Writing segment data to file...")
		if err := writeSegments(report.SegmentsPath, result.Segments); err != nil {
			return nil, err
		}
		p.logger.Info(ctx, "Finished writing segment data file.")
	}

	if p.output.Docx {
		report.DocxPath = filepath.Join(report.OutputDir, stem+"_summary.docx")
		digest := summarizer.Digest{
			Title:   stem,
			Model:   p.model,
			Elapsed: time.Since(startTime),
			Parts:   parts,
		}
		if err := summarizer.WriteDocx(digest, report.DocxPath); err != nil {
			return nil, fmt.Errorf("write summary document: %w", err)
		}
		p.logger.Info(ctx, "Summary document written to %s", report.DocxPath)
	}

	report.Elapsed = time.Since(startTime)
	p.logger.Info(ctx, "Elapsed Time With %s Model: %.2f Minutes", p.model, report.Elapsed.Minutes())
	p.logger.Info(ctx, "Summary of transcription written to %s", report.SummaryPath)

	return report, nil
}
