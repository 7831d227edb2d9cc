package transcriber

import (
	"fmt"

	"github.com/nguyentantai21042004/lecture-digest/internal/config"
	"github.com/nguyentantai21042004/lecture-digest/internal/logger"
	"github.com/nguyentantai21042004/lecture-digest/pkg/executor"
	"github.com/sashabaranov/go-openai"
)

// New builds the Transcriber selected by cfg.Transcription.Backend.
// client may be nil unless the openai backend is selected.
func New(cfg *config.Config, client *openai.Client, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcription.Backend {
	case config.BackendWhisperCpp:
		return NewWhisperCpp(cfg.Transcription.Whisper, cfg.Pipeline.Model, exec, log), nil
	case config.BackendOpenAI:
		if client == nil {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai transcription backend")
		}
		return NewOpenAI(client, cfg.Transcription.OpenAI.Model, log), nil
	default:
		return nil, fmt.Errorf("unknown transcription backend %q", cfg.Transcription.Backend)
	}
}
