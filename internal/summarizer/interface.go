// Package summarizer condenses transcript chunks with a chat-completion LLM.
package summarizer

import "context"

// Summarizer returns a summary for one piece of transcript text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
