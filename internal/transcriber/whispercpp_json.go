package transcriber

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type whisperCppOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []whisperCppSegment `json:"transcription"`
}

type whisperCppOffsets struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

type whisperCppSegment struct {
	Offsets whisperCppOffsets `json:"offsets"`
	Text    string            `json:"text"`
	Tokens  []whisperCppToken `json:"tokens"`
}

type whisperCppToken struct {
	Text    string            `json:"text"`
	Offsets whisperCppOffsets `json:"offsets"`
	ID      int               `json:"id"`
	P       float64           `json:"p"`
}

// parseWhisperCppJSON converts whisper.cpp -oj output into a Result.
// Offsets are milliseconds.
func parseWhisperCppJSON(data []byte, words bool) (*Result, error) {
	var out whisperCppOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode whisper output: %w", err)
	}

	result := &Result{
		Language: out.Result.Language,
		Segments: make([]Segment, 0, len(out.Transcription)),
	}

	var text strings.Builder
	for i, s := range out.Transcription {
		seg := Segment{
			ID:    i,
			Start: msToSeconds(s.Offsets.From),
			End:   msToSeconds(s.Offsets.To),
			Text:  s.Text,
		}
		for _, tok := range s.Tokens {
			seg.Tokens = append(seg.Tokens, tok.ID)
		}
		if words {
			seg.Words = tokensToWords(s.Tokens)
		}
		result.Segments = append(result.Segments, seg)
		text.WriteString(s.Text)
	}

	result.Text = strings.TrimSpace(text.String())
	if n := len(out.Transcription); n > 0 {
		result.Duration = time.Duration(out.Transcription[n-1].Offsets.To) * time.Millisecond
	}
	return result, nil
}

// tokensToWords merges sub-word tokens into words. A token starting with a
// space opens a new word; special tokens like [_BEG_] are skipped.
func tokensToWords(tokens []whisperCppToken) []Word {
	var (
		words []Word
		cur   *Word
		probs int
	)
	flush := func() {
		if cur != nil {
			cur.Probability /= float64(probs)
			words = append(words, *cur)
			cur = nil
		}
	}

	for _, tok := range tokens {
		if tok.Text == "" || strings.HasPrefix(tok.Text, "[_") {
			continue
		}
		if cur == nil || strings.HasPrefix(tok.Text, " ") {
			flush()
			cur = &Word{
				Word:  tok.Text,
				Start: msToSeconds(tok.Offsets.From),
				End:   msToSeconds(tok.Offsets.To),
			}
			cur.Probability = tok.P
			probs = 1
			continue
		}
		cur.Word += tok.Text
		cur.End = msToSeconds(tok.Offsets.To)
		cur.Probability += tok.P
		probs++
	}
	flush()
	return words
}

func msToSeconds(ms int64) float64 {
	return float64(ms) / 1000
}
