// Package transcriber turns audio files into text with timestamped segments.
package transcriber

import (
	"context"
	"fmt"
	"time"
)

// Transcriber converts an audio file to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string, opts Options) (*Result, error)
}

// Options are the per-call transcription settings.
type Options struct {
	Language       string
	WordTimestamps bool
	Verbose        bool
}

// Result is a finished transcription.
type Result struct {
	Text     string
	Language string
	Duration time.Duration
	Segments []Segment
}

// Segment mirrors the segment records Whisper emits, field for field, so
// they can be exported unchanged.
type Segment struct {
	ID               int     `json:"id"`
	Seek             int     `json:"seek"`
	Start            float64 `json:"start"`
	End              float64 `json:"end"`
	Text             string  `json:"text"`
	Tokens           []int   `json:"tokens"`
	Temperature      float64 `json:"temperature"`
	AvgLogprob       float64 `json:"avg_logprob"`
	CompressionRatio float64 `json:"compression_ratio"`
	NoSpeechProb     float64 `json:"no_speech_prob"`
	Words            []Word  `json:"words,omitempty"`
}

// Word is a word-level timestamp inside a segment.
type Word struct {
	Word        string  `json:"word"`
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	Probability float64 `json:"probability"`
}

// String renders the segment the way whisper prints it while decoding.
func (s Segment) String() string {
	return fmt.Sprintf("[%s --> %s] %s", formatTimestamp(s.Start), formatTimestamp(s.End), s.Text)
}

func formatTimestamp(sec float64) string {
	ms := int64(sec*1000 + 0.5)
	m := ms / 60000
	ms -= m * 60000
	s := ms / 1000
	ms -= s * 1000
	return fmt.Sprintf("%02d:%02d.%03d", m, s, ms)
}
