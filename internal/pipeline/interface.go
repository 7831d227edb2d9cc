package pipeline

import (
	"context"
	"time"
)

// Pipeline transcribes and summarizes one audio file per Run.
type Pipeline interface {
	Run(ctx context.Context, audioPath string) (*Report, error)
}

// Report lists what a run produced. Optional outputs are empty when disabled.
type Report struct {
	OutputDir      string
	TranscriptPath string
	SummaryPath    string
	SegmentsPath   string
	DocxPath       string
	Chunks         int
	Elapsed        time.Duration
}
