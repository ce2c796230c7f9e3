package bungo

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Entity-path scoring weights.
const (
	entityBaseConfidence = 0.7
	knownPlaceBonus      = 0.2
	placeSuffixBonus     = 0.15
	earlyPositionBonus   = 0.05
)

// Pattern-path scoring weights.
const (
	locativeContextBonus = 0.1
	personContextPenalty = 0.2
	singleRunePenalty    = 0.3
	twoRunePenalty       = 0.1
	minPatternConfidence = 0.1
	maxMentionConfidence = 1.0
)

var knownPlaces = map[string]struct{}{
	"東京": {}, "京都": {}, "大阪": {}, "鎌倉": {}, "松山": {}, "津軽": {},
	"北海道": {}, "九州": {}, "四国": {}, "本州": {},
	"シラクス": {}, "ローマ": {}, "パリ": {}, "ロンドン": {},
}

// IsKnownPlace reports whether name is on the allowlist of places that
// recur across the collection and are almost never anything else.
func IsKnownPlace(name string) bool {
	_, ok := knownPlaces[name]
	return ok
}

var placeSuffixes = []string{"市", "県", "町", "村", "区", "島", "山", "川", "海", "湖"}

// HasPlaceSuffix reports whether name ends with an administrative or
// geographic suffix.
func HasPlaceSuffix(name string) bool {
	for _, s := range placeSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// ScoreEntity returns the confidence of a recognizer entity found in sentence.
func ScoreEntity(name, sentence string) float64 {
	score := entityBaseConfidence
	if IsKnownPlace(name) {
		score += knownPlaceBonus
	}
	if HasPlaceSuffix(name) {
		score += placeSuffixBonus
	}
	if inFirstHalf(name, sentence) {
		score += earlyPositionBonus
	}
	return clamp(score, 0, maxMentionConfidence)
}

// inFirstHalf reports whether the first occurrence of name starts before
// the middle of sentence, counted in runes.
func inFirstHalf(name, sentence string) bool {
	i := strings.Index(sentence, name)
	if i < 0 {
		return false
	}
	offset := utf8.RuneCountInString(sentence[:i])
	return float64(offset) < float64(utf8.RuneCountInString(sentence))*0.5
}

var (
	// Directional particles, motion verbs and residence or travel words.
	locativeContext = regexp.MustCompile(`から|より|へ|にて|にいる|にある|を通り|を経て|行|来|向か|着|発|到着|住|滞在|訪問|旅行|見物`)

	// Honorifics and speech attribution suggest a personal name.
	personContext = regexp.MustCompile(`さん|君|氏|先生|様|[はが](?:話|言|思|考)`)
)

// ScorePattern returns the confidence of a pattern match found in sentence,
// starting from the pattern category's base confidence. The result is never
// below 0.1 so weak matches are kept for review rather than discarded.
func ScorePattern(name, sentence string, base float64) float64 {
	score := base
	if locativeContext.MatchString(sentence) {
		score += locativeContextBonus
	}
	if personContext.MatchString(sentence) {
		score -= personContextPenalty
	}
	switch utf8.RuneCountInString(name) {
	case 1:
		score -= singleRunePenalty
	case 2:
		score -= twoRunePenalty
	}
	return clamp(score, minPatternConfidence, maxMentionConfidence)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
