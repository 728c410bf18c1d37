// Package sentence splits extracted handbook text into sentences.
//
// The splitter is tuned for German module descriptions: it keeps
// abbreviations such as "z.B.", "bzw." or "Dr." and numbered list markers
// like "3." inside their sentence, and it repairs words broken across
// lines ("Fer- tigkeit" becomes "Fertigkeit").
package sentence

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultAbbreviations are the multi-letter abbreviations that never end a
// sentence.
var DefaultAbbreviations = []string{"etc.", "bzw.", "usw.", "uvm."}

// Segmenter splits text into sentences
type Segmenter struct {
	abbreviations []string
}

// Option configures a Segmenter
type Option func(*Segmenter)

// WithAbbreviations adds abbreviations (including their trailing period)
// that must not end a sentence.
func WithAbbreviations(abbreviations ...string) Option {
	return func(s *Segmenter) {
		s.abbreviations = append(s.abbreviations, abbreviations...)
	}
}

// New creates a segmenter with the default abbreviation set plus any
// configured extras.
func New(opts ...Option) *Segmenter {
	s := &Segmenter{
		abbreviations: append([]string(nil), DefaultAbbreviations...),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSegmenter = New()

// Segment splits text with the default segmenter
func Segment(text string) []string {
	return defaultSegmenter.Segment(text)
}

// Segment splits text at whitespace that follows '.', '!' or '?', unless
// the text before the whitespace ends in an abbreviation. Each sentence is
// trimmed and dehyphenated. Empty input yields a single empty sentence.
func (s *Segmenter) Segment(text string) []string {
	var pieces []string
	start := 0
	var prev rune

	for i, r := range text {
		if unicode.IsSpace(r) && isTerminator(prev) && !s.keepsSentence(text[:i]) {
			pieces = append(pieces, text[start:i])
			start = i + utf8.RuneLen(r)
		}
		prev = r
	}
	pieces = append(pieces, text[start:])

	sentences := make([]string, len(pieces))
	for i, piece := range pieces {
		sentences[i] = strings.TrimSpace(Dehyphenate(strings.TrimSpace(piece)))
	}
	return sentences
}

// keepsSentence reports whether before ends in something that looks like
// an abbreviation rather than a sentence end.
func (s *Segmenter) keepsSentence(before string) bool {
	last := lastRunes(before, 4)
	n := len(last)

	// Initials and short forms: "z.B.", "u.a.", "d.h."
	if n == 4 && isWordChar(last[0]) && last[1] == '.' && isWordChar(last[2]) {
		return true
	}

	for _, abbr := range s.abbreviations {
		if strings.HasSuffix(before, abbr) {
			return true
		}
	}

	// Title abbreviations: "Dr.", "Nr.", "Kl."
	if n >= 3 && isASCIIUpper(last[n-3]) && isASCIILower(last[n-2]) && last[n-1] == '.' {
		return true
	}

	// Ordinals and numbered lists: "3."
	if n >= 2 && isASCIIDigit(last[n-2]) && last[n-1] == '.' {
		return true
	}

	return false
}

// Dehyphenate removes line-wrap hyphenation: every "- " that directly
// follows a non-space character is dropped, so "Fer- tigkeit" becomes
// "Fertigkeit". Free-standing dashes (" - ") are kept.
func Dehyphenate(text string) string {
	if !strings.Contains(text, "- ") {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))

	var prev rune
	havePrev := false
	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], "- ") && (!havePrev || !unicode.IsSpace(prev)) {
			prev, havePrev = ' ', true
			i += 2
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		sb.WriteRune(r)
		prev, havePrev = r, true
		i += size
	}
	return sb.String()
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// lastRunes returns up to k trailing runes of s in their original order.
func lastRunes(s string, k int) []rune {
	out := make([]rune, 0, k)
	for len(s) > 0 && len(out) < k {
		r, size := utf8.DecodeLastRuneInString(s)
		out = append(out, r)
		s = s[:len(s)-size]
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
