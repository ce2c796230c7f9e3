package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bungo"
)

// Ensure AozoraExtractor implements bungo.TextExtractor at compile time.
var _ bungo.TextExtractor = (*AozoraExtractor)(nil)

// AozoraExtractor extracts the body text of an Aozora Bunko XHTML page.
type AozoraExtractor struct{}

// NewAozoraExtractor creates an AozoraExtractor.
func NewAozoraExtractor() *AozoraExtractor {
	return &AozoraExtractor{}
}

// Elements that never carry the work's text.
const (
	rubyReadingSelector = "rt, rp"
	noteSelector        = "span.notes"
	chromeSelector      = "script, style, nav, header, footer"
)

// ExtractText returns the text of div.main_text with ruby readings and
// inline notes removed and <br> turned into newlines. Pages without a
// main_text block fall back to the body minus scripts and navigation.
func (e *AozoraExtractor) ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", bungo.Errorf(bungo.EINVALID, "failed to parse HTML: %v", err)
	}

	content := doc.Find("div.main_text").First()
	if content.Length() == 0 {
		content = doc.Find("body")
		content.Find(chromeSelector).Remove()
		content.Find("div.metadata, div.bibliographical_information, div.after_text").Remove()
	}

	content.Find(rubyReadingSelector).Remove()
	content.Find(noteSelector).Remove()
	content.Find("br").ReplaceWithHtml("\n")
	content.Find("p, div").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	return strings.TrimSpace(content.Text()), nil
}
