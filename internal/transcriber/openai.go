package transcriber

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/lecture-digest/internal/logger"
	"github.com/sashabaranov/go-openai"
)

type implOpenAI struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// NewOpenAI creates a Transcriber backed by the OpenAI audio transcription API.
func NewOpenAI(client *openai.Client, model string, log logger.Logger) Transcriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &implOpenAI{
		client: client,
		model:  model,
		logger: log,
	}
}

func (o *implOpenAI) Transcribe(ctx context.Context, audioPath string, opts Options) (*Result, error) {
	req := openai.AudioRequest{
		Model:    o.model,
		FilePath: audioPath,
		Language: languageCode(opts.Language),
		Format:   openai.AudioResponseFormatVerboseJSON,
	}
	if opts.WordTimestamps {
		req.TimestampGranularities = []openai.TranscriptionTimestampGranularity{
			openai.TranscriptionTimestampGranularityWord,
			openai.TranscriptionTimestampGranularitySegment,
		}
	}

	o.logger.Info(ctx, "Transcribing with OpenAI model %s: %s", o.model, audioPath)

	resp, err := o.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai transcription: %w", err)
	}

	result := &Result{
		Text:     resp.Text,
		Language: resp.Language,
		Duration: time.Duration(resp.Duration * float64(time.Second)),
		Segments: make([]Segment, 0, len(resp.Segments)),
	}
	for _, s := range resp.Segments {
		seg := Segment{
			ID:               s.ID,
			Seek:             s.Seek,
			Start:            s.Start,
			End:              s.End,
			Text:             s.Text,
			Tokens:           s.Tokens,
			Temperature:      s.Temperature,
			AvgLogprob:       s.AvgLogprob,
			CompressionRatio: s.CompressionRatio,
			NoSpeechProb:     s.NoSpeechProb,
		}
		if opts.Verbose {
			o.logger.Info(ctx, "%s", seg)
		}
		result.Segments = append(result.Segments, seg)
	}

	if opts.WordTimestamps {
		words := make([]Word, 0, len(resp.Words))
		for _, w := range resp.Words {
			words = append(words, Word{Word: w.Word, Start: w.Start, End: w.End})
		}
		assignWords(result.Segments, words)
	}

	o.logger.Info(ctx, "Transcription completed: %d segments", len(result.Segments))
	return result, nil
}

// assignWords attaches each word to the segment whose span contains its
// start time. Words past the last segment end go to the last segment.
func assignWords(segments []Segment, words []Word) {
	if len(segments) == 0 {
		return
	}
	i := 0
	for _, w := range words {
		for i < len(segments)-1 && w.Start >= segments[i].End {
			i++
		}
		segments[i].Words = append(segments[i].Words, w)
	}
}
