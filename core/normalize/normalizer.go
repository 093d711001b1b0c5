// Package normalize implements the Normalizer interface.
// It repairs the structural defects that DOCX converters leave in their
// Markdown output. Four passes run in a fixed order:
//  1. Structure: blank lines around headings and lists, blank-line collapsing,
//     single trailing newline
//  2. Anchor: heading text → anchor slug (used by pass 3)
//  3. RewriteTOCLinks: Word "#_Toc" bookmarks → heading anchors
//  4. RenumberSections: flattened "1. **Label**" items → 1., 2., 3., ...
//
// Every pass is a total function over text: no I/O, no logging, no shared state.
package normalize

import (
	"strings"

	"github.com/gaurav-prasanna/docx2md/core"
)

// MarkdownNormalizer runs the normalization passes over converter output.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize applies every pass in order and reports what changed.
// The input is expected to use "\n" line endings.
func (n *MarkdownNormalizer) Normalize(markdown string) (string, core.NormalizeReport) {
	var report core.NormalizeReport

	text, inserted, removed := structure(markdown)
	report.BlankLinesInserted = inserted
	report.BlankLinesRemoved = removed

	text, rewritten, stripped := rewriteTOCLinks(text)
	report.LinksRewritten = rewritten
	report.LinksStripped = stripped

	text, renumbered := renumberSections(text)
	report.ItemsRenumbered = renumbered

	return text, report
}

// isBlank reports whether a line holds only whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isHeading reports whether a line is an ATX heading at any level.
func isHeading(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// blankLines counts the blank lines in text. A final newline terminates the
// last line rather than starting an empty one.
func blankLines(text string) int {
	if text == "" {
		return 0
	}
	n := 0
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		if isBlank(line) {
			n++
		}
	}
	return n
}
