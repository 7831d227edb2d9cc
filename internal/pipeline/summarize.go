package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// summarize sends chunks to the summarizer in order and returns one summary
// per chunk. After each chunk the whole accumulated summary is rewritten to
// summaryPath, so the file holds every part finished so far.
func (p *implPipeline) summarize(ctx context.Context, chunks []string, summaryPath string) ([]string, error) {
	if len(chunks) == 0 {
		p.logger.Warn(ctx, "Transcript is empty, nothing to summarize")
		return nil, writeText(summaryPath, "")
	}

	var summary strings.Builder
	parts := make([]string, 0, len(chunks))

	var bar *progressbar.ProgressBar
	if p.progress != nil {
		bar = progressbar.NewOptions(len(chunks),
			progressbar.OptionSetWriter(p.progress),
			progressbar.OptionSetDescription("Summarizing"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for i, chunk := range chunks {
		text, err := p.summarizer.Summarize(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("summarize chunk %d: %w", i+1, err)
		}
		parts = append(parts, text)

		summary.WriteString(text)
		summary.WriteString("\n")
		if err := writeText(summaryPath, summary.String()); err != nil {
			return nil, err
		}

		p.logger.Info(ctx, "Chunk %d summarised.", i+1)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return parts, nil
}
