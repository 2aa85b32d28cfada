// Package textcrop caps message text to a maximum word count while
// preserving the whitespace layout of the words kept.
package textcrop

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultWordLimit is the word cap applied to ingested message text.
const DefaultWordLimit = 500

const truncationMarker = "..."

// Crop normalizes text and truncates it to at most limit words, where a
// word is a maximal run of non-whitespace characters. Whitespace between
// retained words is copied verbatim. The truncation marker is appended
// only when at least one word was dropped. The second return value
// reports whether truncation occurred.
func Crop(text string, limit int) (string, bool) {
	norm := normalize(text)

	var b strings.Builder
	b.Grow(len(norm))
	words := 0
	truncated := false

	for i := 0; i < len(norm); {
		j := i
		if r, _ := utf8.DecodeRuneInString(norm[i:]); unicode.IsSpace(r) {
			for j < len(norm) {
				r2, size := utf8.DecodeRuneInString(norm[j:])
				if !unicode.IsSpace(r2) {
					break
				}
				j += size
			}
			b.WriteString(norm[i:j])
		} else {
			for j < len(norm) {
				r2, size := utf8.DecodeRuneInString(norm[j:])
				if unicode.IsSpace(r2) {
					break
				}
				j += size
			}
			if words == limit {
				truncated = true
				break
			}
			b.WriteString(norm[i:j])
			words++
		}
		i = j
	}

	if truncated {
		b.WriteString(truncationMarker)
	}
	return b.String(), truncated
}

// normalize rewrites line endings to a single "\n" and collapses runs of
// horizontal whitespace (spaces and tabs) to one space. Newlines are
// never altered beyond the line-ending rewrite.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		switch c := s[i]; {
		case c == '\r':
			b.WriteByte('\n')
			i++
			if i < len(s) && s[i] == '\n' {
				i++
			}
		case c == ' ' || c == '\t':
			b.WriteByte(' ')
			for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
				i++
			}
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}
