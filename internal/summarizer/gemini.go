package summarizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/lecture-digest/internal/config"
	"github.com/nguyentantai21042004/lecture-digest/internal/logger"
	"google.golang.org/genai"
)

type implGemini struct {
	apiKeys []string
	logger  logger.Logger
	model   string
	baseURL string

	mu         sync.Mutex
	currentKey int
}

// NewGemini creates a Summarizer that rotates through the supplied Gemini API keys.
func NewGemini(apiKeys []string, cfg config.GeminiConfig, log logger.Logger) Summarizer {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &implGemini{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
		baseURL: cfg.BaseURL,
	}
}

// Summarize sends one chunk to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors; each key is tried at most once per call.
// Safe for concurrent use.
func (s *implGemini) Summarize(ctx context.Context, text string) (string, error) {
	contentCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemPrompt, genai.RoleUser),
	}

	var lastErr error
	for range len(s.apiKeys) {
		idx := s.activeKey()

		client, err := s.newClient(ctx, s.apiKeys[idx])
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateFrom(idx)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(UserPrompt(text)), contentCfg)
		if err != nil {
			if isRateLimited(err) {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				s.rotateFrom(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var b strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				b.WriteString(part.Text)
			}
			return b.String(), nil
		}

		return "", ErrEmptyResponse
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implGemini) newClient(ctx context.Context, key string) (*genai.Client, error) {
	cfg := &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	}
	if s.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: s.baseURL}
	}
	return genai.NewClient(ctx, cfg)
}

func (s *implGemini) activeKey() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentKey
}

// rotateFrom advances past idx unless another caller already moved on.
func (s *implGemini) rotateFrom(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentKey == idx {
		s.currentKey = (idx + 1) % len(s.apiKeys)
	}
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
