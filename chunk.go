package bungo

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// DefaultMaxChunkBytes keeps chunks under the input ceiling of the
// recognizers (about 49KB for the largest models in use).
const DefaultMaxChunkBytes = 40000

const chunkTerminator = "。"

// ChunkText splits text into chunks of at most maxBytes bytes.
//
// Chunks are cut after a "。" whenever possible and whole sentences are
// packed greedily. A sentence longer than maxBytes is force-split into
// pieces of about maxBytes/3 bytes on rune boundaries; the last piece stays
// open so following sentences can join it. Concatenating the chunks yields
// text unchanged. Empty text yields no chunks.
//
// A rune is never split: when maxBytes is smaller than a rune, that rune
// is yielded as a chunk of its own and exceeds maxBytes.
//
// The returned sequence is lazy and can be ranged over more than once.
func ChunkText(text string, maxBytes int) iter.Seq[string] {
	if maxBytes < 1 {
		maxBytes = 1
	}
	return func(yield func(string) bool) {
		// The open chunk is always text[start:end].
		start, end := 0, 0
		for end < len(text) {
			next := sentenceEnd(text, end)
			if next-start <= maxBytes {
				end = next
				continue
			}
			if end > start {
				if !yield(text[start:end]) {
					return
				}
				start = end
			}
			if next-start <= maxBytes {
				end = next
				continue
			}

			// Single sentence over the limit.
			pieceBytes := max(maxBytes/3, 1)
			for next-start > pieceBytes {
				n := runePrefix(text[start:next], pieceBytes)
				if !yield(text[start : start+n]) {
					return
				}
				start += n
			}
			end = next
		}
		if end > start {
			yield(text[start:end])
		}
	}
}

// sentenceEnd returns the offset just past the next "。" at or after from,
// or len(text) if there is none.
func sentenceEnd(text string, from int) int {
	i := strings.Index(text[from:], chunkTerminator)
	if i < 0 {
		return len(text)
	}
	return from + i + len(chunkTerminator)
}

// runePrefix returns the length of the longest prefix of s that is at most
// n bytes and ends on a rune boundary. It is never zero for non-empty s: if
// the first rune alone exceeds n, the first rune is returned.
func runePrefix(s string, n int) int {
	if n >= len(s) {
		return len(s)
	}
	i := n
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	if i == 0 {
		_, size := utf8.DecodeRuneInString(s)
		return size
	}
	return i
}
