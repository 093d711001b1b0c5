// Package extract cleans the HTML produced from a .docx body before it is
// converted to Markdown:
//  1. Removing noise elements (scripts, styles, images without media support)
//  2. Dropping paragraphs and headings that carry no text
//  3. Unwrapping links whose target is empty
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are HTML elements removed before conversion.
// These contribute no meaningful content to a note.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"img", "picture", "svg", "canvas",
	"object", "embed", "iframe",
}

// emptySelectors are blocks dropped when they contain only whitespace.
const emptySelectors = "p, h1, h2, h3, h4, h5, h6, li, strong, em"

// HTMLExtractor strips noise from HTML and returns the cleaned body fragment.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract takes a full HTML document and returns its cleaned <body> content.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// Word leaves empty paragraphs for spacing; they turn into blank-line runs.
	doc.Find(emptySelectors).Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) == "" && s.Find("br").Length() == 0 {
			s.Remove()
		}
	})

	// Lists left without items after the pass above.
	doc.Find("ol, ul").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Length() == 0 {
			s.Remove()
		}
	})

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); !ok || strings.TrimSpace(href) == "" || href == "#" {
			s.ReplaceWithSelection(s.Contents())
		}
	})

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return "", fmt.Errorf("no body found in HTML")
	}

	result, err := body.Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return strings.TrimSpace(result), nil
}
