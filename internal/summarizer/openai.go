package summarizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/lecture-digest/internal/logger"
	"github.com/sashabaranov/go-openai"
)

// ErrEmptyResponse is returned when the model answers without any content.
var ErrEmptyResponse = errors.New("empty response from model")

type implOpenAI struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// NewOpenAI creates a Summarizer that calls the OpenAI chat completions API.
func NewOpenAI(client *openai.Client, model string, log logger.Logger) Summarizer {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &implOpenAI{
		client: client,
		model:  model,
		logger: log,
	}
}

func (s *implOpenAI) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: UserPrompt(text)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	s.logger.Debug(ctx, "Chat completion used %d prompt / %d completion tokens",
		resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	return resp.Choices[0].Message.Content, nil
}
