package pipeline

import (
	"io"
	"os"

	"github.com/nguyentantai21042004/lecture-digest/internal/config"
	"github.com/nguyentantai21042004/lecture-digest/internal/logger"
	"github.com/nguyentantai21042004/lecture-digest/internal/summarizer"
	"github.com/nguyentantai21042004/lecture-digest/internal/transcriber"
)

type implPipeline struct {
	settings    config.Pipeline
	model       string
	output      config.OutputConfig
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
	progress    io.Writer
}

// New creates a Pipeline. cfg must already be validated; its pipeline
// settings are copied and not read again.
func New(cfg *config.Config, tr transcriber.Transcriber, sum summarizer.Summarizer, log logger.Logger) Pipeline {
	p := &implPipeline{
		settings:    cfg.Pipeline,
		model:       cfg.TranscriptionModel(),
		output:      cfg.Output,
		transcriber: tr,
		summarizer:  sum,
		logger:      log,
	}
	if cfg.Output.Progress {
		p.progress = os.Stderr
	}
	return p
}
