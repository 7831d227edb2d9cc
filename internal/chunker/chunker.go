// Package chunker splits transcripts into bounded, sentence-aligned pieces
// small enough for a single summarization request.
package chunker

import (
	"strings"
	"unicode"
)

// DefaultMaxLength is the chunk size used when a non-positive maximum is given.
const DefaultMaxLength = 4000

// Split cuts text into chunks of at most maxLength characters (runes).
//
// Each cut is placed just after the last period inside the window, or at
// the window edge when the window has no period. Whitespace at the start of
// the remainder is dropped before the next window is taken. The chunks,
// rejoined with the dropped whitespace, reproduce text exactly.
func Split(text string, maxLength int) []string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	var chunks []string
	for text != "" {
		end := runeOffset(text, maxLength)
		if end == len(text) {
			chunks = append(chunks, text)
			break
		}

		pos := strings.LastIndexByte(text[:end], '.')
		if pos == -1 {
			pos = end
		} else {
			pos++
		}

		chunks = append(chunks, text[:pos])
		text = strings.TrimLeftFunc(text[pos:], unicode.IsSpace)
	}

	return chunks
}

// runeOffset returns the byte offset just past the first n runes of s, or
// len(s) when s holds n runes or fewer.
func runeOffset(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}
