package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nguyentantai21042004/lecture-digest/internal/logger"
	"github.com/sashabaranov/go-openai"
)

func newChatServer(t *testing.T, reply string, got *openai.ChatCompletionRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(got); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(url string) *openai.Client {
	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = url + "/v1"
	return openai.NewClientWithConfig(cfg)
}

func TestOpenAISummarize(t *testing.T) {
	var req openai.ChatCompletionRequest
	srv := newChatServer(t, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"model": "gpt-3.5-turbo",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "Key points."}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 20, "completion_tokens": 3, "total_tokens": 23}
	}`, &req)

	s := NewOpenAI(newTestClient(srv.URL), "", logger.Nop())
	got, err := s.Summarize(context.Background(), "The lecture text.")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "Key points." {
		t.Errorf("Summarize() = %q, want %q", got, "Key points.")
	}

	if req.Model != openai.GPT3Dot5Turbo {
		t.Errorf("model = %q, want %q", req.Model, openai.GPT3Dot5Turbo)
	}
	if len(req.Messages) != 2 {
		t.Fatalf("len(messages) = %d, want 2", len(req.Messages))
	}
	if req.Messages[0].Role != openai.ChatMessageRoleSystem || req.Messages[0].Content != "You are a helpful lecture summarizer." {
		t.Errorf("system message = %+v", req.Messages[0])
	}
	want := "Please Summarize this keeping important details: The lecture text."
	if req.Messages[1].Role != openai.ChatMessageRoleUser || req.Messages[1].Content != want {
		t.Errorf("user message = %+v, want content %q", req.Messages[1], want)
	}
}

func TestOpenAISummarizeNoChoices(t *testing.T) {
	var req openai.ChatCompletionRequest
	srv := newChatServer(t, `{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`, &req)

	s := NewOpenAI(newTestClient(srv.URL), "gpt-4o-mini", logger.Nop())
	_, err := s.Summarize(context.Background(), "text")
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("Summarize() error = %v, want %v", err, ErrEmptyResponse)
	}
	if req.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want %q", req.Model, "gpt-4o-mini")
	}
}

func TestOpenAISummarizeAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "boom", "type": "server_error"}}`))
	}))
	defer srv.Close()

	s := NewOpenAI(newTestClient(srv.URL), "", logger.Nop())
	if _, err := s.Summarize(context.Background(), "text"); err == nil {
		t.Fatal("Summarize() should return API errors")
	}
}

func TestUserPrompt(t *testing.T) {
	got := UserPrompt("abc")
	want := "Please Summarize this keeping important details: abc"
	if got != want {
		t.Errorf("UserPrompt() = %q, want %q", got, want)
	}
}
