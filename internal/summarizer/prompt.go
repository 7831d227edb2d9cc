package summarizer

import "fmt"

const (
	// SystemPrompt is sent as the system message with every chunk.
	SystemPrompt = "You are a helpful lecture summarizer."

	userPromptTemplate = "Please Summarize this keeping important details: %s"
)

// UserPrompt builds the user message for one transcript chunk.
func UserPrompt(chunk string) string {
	return fmt.Sprintf(userPromptTemplate, chunk)
}
