package bungo

import (
	"strings"
	"unicode"
)

// SplitSentences splits text on sentence-final punctuation (。！？ and their
// ASCII forms), trims whitespace from each sentence and drops empty ones.
// Empty input yields an empty result.
func SplitSentences(text string) []string {
	var sentences []string
	for _, s := range strings.FieldsFunc(text, isSentenceTerminator) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// TrimSentence removes surrounding whitespace and trailing sentence-final
// punctuation, so a segmenter that keeps terminators yields the same
// sentence as SplitSentences.
func TrimSentence(s string) string {
	return strings.TrimLeftFunc(strings.TrimRightFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || isSentenceTerminator(r)
	}), unicode.IsSpace)
}

func isSentenceTerminator(r rune) bool {
	switch r {
	case '。', '！', '？', '!', '?':
		return true
	}
	return false
}

// ContextWindow is a sentence and its immediate neighbors.
type ContextWindow struct {
	Before   string
	Sentence string
	After    string
}

// Window returns the context window around sentences[i]. Neighbors outside
// the slice are empty.
func Window(sentences []string, i int) ContextWindow {
	var w ContextWindow
	if i < 0 || i >= len(sentences) {
		return w
	}
	w.Sentence = sentences[i]
	if i > 0 {
		w.Before = sentences[i-1]
	}
	if i < len(sentences)-1 {
		w.After = sentences[i+1]
	}
	return w
}
