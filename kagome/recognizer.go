// Package kagome implements bungo.Recognizer with the kagome morphological
// analyzer and the IPA dictionary.
package kagome

import (
	"context"
	"strings"

	"github.com/fwojciec/bungo"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Ensure Recognizer implements bungo.Recognizer at compile time.
var _ bungo.Recognizer = (*Recognizer)(nil)

// Recognizer segments sentences and tags place names from IPA part-of-speech
// features. It is safe for concurrent use.
type Recognizer struct {
	t *tokenizer.Tokenizer
}

// NewRecognizer loads the IPA dictionary and returns a Recognizer.
func NewRecognizer() (*Recognizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, bungo.Errorf(bungo.ECONFIG, "load kagome dictionary: %v", err)
	}
	return &Recognizer{t: t}, nil
}

// Sentences splits text after every full stop, exclamation or question
// mark. Sentences keep their terminator.
func (r *Recognizer) Sentences(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		sentences []string
		b         strings.Builder
	)
	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}
	for _, tok := range r.t.Tokenize(text) {
		b.WriteString(tok.Surface)
		if isTerminator(tok) {
			flush()
		}
	}
	flush()
	return sentences, nil
}

// Entities returns runs of regional proper nouns, joined with any regional
// suffix that follows them (松山 + 市).
func (r *Recognizer) Entities(ctx context.Context, sentence string) ([]bungo.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		entities []bungo.Entity
		run      strings.Builder
		label    bungo.EntityLabel
		suffixed bool
	)
	flush := func() {
		if run.Len() > 0 {
			entities = append(entities, bungo.Entity{Text: run.String(), Label: label})
		}
		run.Reset()
		suffixed = false
	}
	for _, tok := range r.t.Tokenize(sentence) {
		pos := tok.POS()
		switch {
		case isRegion(pos):
			if suffixed {
				flush()
			}
			run.WriteString(tok.Surface)
			label = regionLabel(pos)
		case run.Len() > 0 && isRegionSuffix(pos):
			run.WriteString(tok.Surface)
			label = suffixLabel(tok.Surface)
			suffixed = true
		default:
			flush()
		}
	}
	flush()
	return entities, nil
}

func feature(pos []string, i int) string {
	if i < len(pos) {
		return pos[i]
	}
	return ""
}

func isRegion(pos []string) bool {
	return feature(pos, 0) == "名詞" && feature(pos, 1) == "固有名詞" && feature(pos, 2) == "地域"
}

func isRegionSuffix(pos []string) bool {
	return feature(pos, 0) == "名詞" && feature(pos, 1) == "接尾" && feature(pos, 2) == "地域"
}

func regionLabel(pos []string) bungo.EntityLabel {
	if feature(pos, 3) == "国" {
		return bungo.LabelGPE
	}
	return bungo.LabelLOC
}

func suffixLabel(suffix string) bungo.EntityLabel {
	switch {
	case strings.HasSuffix(suffix, "郡"):
		return bungo.LabelCounty
	case strings.ContainsAny(suffix, "都道府県"):
		return bungo.LabelProvince
	case strings.ContainsAny(suffix, "市区町村"):
		return bungo.LabelCity
	default:
		return bungo.LabelLOC
	}
}

func isTerminator(tok tokenizer.Token) bool {
	switch tok.Surface {
	case "。", "！", "？", "!", "?":
		return true
	}
	pos := tok.POS()
	return feature(pos, 0) == "記号" && feature(pos, 1) == "句点"
}
