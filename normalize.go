package bungo

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// ｜漢字《かんじ》 keeps the base text of an explicitly delimited ruby.
	delimitedRubyRe = regexp.MustCompile(`｜([^《]+)《[^》]*》`)
	rubyRe          = regexp.MustCompile(`《[^》]*》`)
	annotationRe    = regexp.MustCompile(`［＃[^］]*］`)
	editorNoteRe    = regexp.MustCompile(`〔[^〕]*〕`)
	noteLineRe      = regexp.MustCompile(`(?m)^※.*$`)
	spaceRunRe      = regexp.MustCompile(`[ \t　]+`)
	blankLinesRe    = regexp.MustCompile(`\n{3,}`)
)

// Footer lines that start the colophon of an Aozora Bunko file.
var colophonPrefixes = []string{"底本：", "入力：", "校正："}

// NormalizeText turns an Aozora Bunko text into the form extractors expect:
// header and colophon removed, ruby readings and editorial annotations
// stripped, NFKC-normalized, and whitespace collapsed.
func NormalizeText(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = stripMetadata(text)
	text = delimitedRubyRe.ReplaceAllString(text, "$1")
	text = rubyRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "｜", "")
	text = annotationRe.ReplaceAllString(text, "")
	text = editorNoteRe.ReplaceAllString(text, "")
	text = noteLineRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "＊", "")

	// NFKC folds half-width katakana and full-width Latin forms so the same
	// place name compares equal across editions.
	text = norm.NFKC.String(text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRunRe.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// stripMetadata drops the title block and the ruby legend that Aozora files
// put between two dashed rules, and everything from the colophon on.
func stripMetadata(text string) string {
	lines := strings.Split(text, "\n")

	var rules []int
	for i, line := range lines {
		if strings.Contains(line, "-------") {
			rules = append(rules, i)
			if len(rules) == 2 {
				break
			}
		}
	}
	if len(rules) == 2 {
		lines = lines[rules[1]+1:]
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, prefix := range colophonPrefixes {
			if strings.HasPrefix(trimmed, prefix) {
				return strings.Join(lines[:i], "\n")
			}
		}
	}
	return strings.Join(lines, "\n")
}
