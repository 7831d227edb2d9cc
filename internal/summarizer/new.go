package summarizer

import (
	"fmt"

	"github.com/nguyentantai21042004/lecture-digest/internal/config"
	"github.com/nguyentantai21042004/lecture-digest/internal/logger"
	"github.com/sashabaranov/go-openai"
)

// New builds the Summarizer selected by cfg.Summarization.Backend.
// client may be nil unless the openai backend is selected.
func New(cfg *config.Config, secrets config.Secrets, client *openai.Client, log logger.Logger) (Summarizer, error) {
	switch cfg.Summarization.Backend {
	case config.BackendOpenAI:
		if client == nil {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai summarization backend")
		}
		return NewOpenAI(client, cfg.Summarization.OpenAI.Model, log), nil
	case config.BackendGemini:
		if len(secrets.GeminiAPIKeys) == 0 {
			return nil, fmt.Errorf("GEMINI_API_KEYS is required for the gemini summarization backend")
		}
		return NewGemini(secrets.GeminiAPIKeys, cfg.Summarization.Gemini, log), nil
	default:
		return nil, fmt.Errorf("unknown summarization backend %q", cfg.Summarization.Backend)
	}
}
