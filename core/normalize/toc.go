// Package normalize - table-of-contents link rewriting.
// Word exports TOC entries as links to hidden "_Toc" bookmarks that do not
// exist in Markdown. Each link is pointed at the matching heading anchor,
// or unwrapped to plain text when no heading matches.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// tocLink matches [label](#_Toc123456).
	tocLink = regexp.MustCompile(`\[([^\]]+)\]\(#_Toc\d+\)`)
	// headingMarker is the leading "#" run of an ATX heading.
	headingMarker = regexp.MustCompile(`^#+\s*`)
	// trailingNumber is a page number baked into heading or label text.
	trailingNumber = regexp.MustCompile(`\s+\d+$`)
	// leadingNumber is list numbering at the start of a TOC label.
	leadingNumber = regexp.MustCompile(`^\d+\.?\s*`)
)

// headingIndex maps heading keys to anchors in first-insertion order.
// Re-inserting a key updates its anchor but keeps its position.
type headingIndex struct {
	keys    []string
	lower   []string
	anchors map[string]string
}

func newHeadingIndex() *headingIndex {
	return &headingIndex{anchors: make(map[string]string)}
}

func (x *headingIndex) set(key, anchor string) {
	if _, ok := x.anchors[key]; !ok {
		x.keys = append(x.keys, key)
		x.lower = append(x.lower, strings.ToLower(key))
	}
	x.anchors[key] = anchor
}

// resolve finds the anchor for a cleaned TOC label: exact key first, then the
// first key that contains the label or is contained by it, ignoring case.
func (x *headingIndex) resolve(label string) (string, bool) {
	if anchor, ok := x.anchors[label]; ok {
		return anchor, true
	}
	needle := strings.ToLower(label)
	for i, key := range x.lower {
		if strings.Contains(key, needle) || strings.Contains(needle, key) {
			return x.anchors[x.keys[i]], true
		}
	}
	return "", false
}

// buildHeadingIndex indexes every heading under its full text and under the
// text with a trailing page number removed.
func buildHeadingIndex(lines []string) *headingIndex {
	index := newHeadingIndex()
	for _, line := range lines {
		if !isHeading(line) {
			continue
		}
		text := headingText(line)
		anchor := Anchor(text)
		index.set(text, anchor)
		index.set(trailingNumber.ReplaceAllString(text, ""), anchor)
	}
	return index
}

// headingText is an ATX heading line without its "#" marker.
func headingText(line string) string {
	return headingMarker.ReplaceAllString(strings.TrimSpace(line), "")
}

// HeadingAnchor derives the anchor for an ATX heading line such as
// "## Incident [handling](x)". The raw text is slugged, inline markup
// included, the same way TOC links are resolved.
func HeadingAnchor(line string) string {
	return Anchor(headingText(line))
}

// tocLookupKey strips list numbering and page numbers from a TOC label.
func tocLookupKey(label string) string {
	key := leadingNumber.ReplaceAllString(label, "")
	key = trailingNumber.ReplaceAllString(key, "")
	return strings.TrimSpace(key)
}

// RewriteTOCLinks points [label](#_Toc…) links at the matching heading
// anchor. Links without a matching heading are replaced by their label.
func RewriteTOCLinks(text string) string {
	out, _, _ := rewriteTOCLinks(text)
	return out
}

func rewriteTOCLinks(text string) (string, int, int) {
	if !strings.Contains(text, "](#_Toc") {
		return text, 0, 0
	}

	lines := strings.Split(text, "\n")
	index := buildHeadingIndex(lines)
	rewritten, stripped := 0, 0

	for i, line := range lines {
		if !strings.Contains(line, "](#_Toc") {
			continue
		}
		lines[i] = tocLink.ReplaceAllStringFunc(line, func(link string) string {
			m := tocLink.FindStringSubmatch(link)
			if m == nil {
				return link
			}
			label := m[1]
			if anchor, ok := index.resolve(tocLookupKey(label)); ok {
				rewritten++
				return "[" + label + "](#" + anchor + ")"
			}
			stripped++
			return label
		})
	}

	return strings.Join(lines, "\n"), rewritten, stripped
}
