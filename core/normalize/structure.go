// Package normalize - blank-line structural pass.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// blankRun matches two or more consecutive blank lines. A line of Unicode
// whitespace (such as Word's non-breaking spaces) counts as blank, the same
// as isBlank.
var blankRun = regexp.MustCompile(`\n[\s\v\x{85}\p{Z}]*\n[\s\v\x{85}\p{Z}]*\n+`)

// orderedItem matches an ordered list marker such as "1. " or "10) ".
var orderedItem = regexp.MustCompile(`^\d+[.)] `)

// IsListItem reports whether a line is an unordered ("- ", "* ", "+ ")
// or ordered ("1. ", "2) ") list item. Leading indentation is ignored.
func IsListItem(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "+ ") {
		return true
	}
	return orderedItem.MatchString(trimmed)
}

// Structure surrounds headings and list blocks with exactly one blank line,
// collapses blank-line runs and ends the text with a single newline.
// Whitespace-only input yields the empty string.
func Structure(text string) string {
	out, _, _ := structure(text)
	return out
}

func structure(text string) (string, int, int) {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines)+len(lines)/4)
	inserted := 0

	// separate appends a blank line unless the accumulator is empty,
	// already ends with a blank line, or ends with a line keep accepts.
	separate := func(keep func(string) bool) {
		if len(out) == 0 {
			return
		}
		last := out[len(out)-1]
		if isBlank(last) || keep(last) {
			return
		}
		out = append(out, "")
		inserted++
	}

	for i := 0; i < len(lines); {
		line := lines[i]

		switch {
		case isHeading(line):
			separate(isHeading)
			out = append(out, line)
			i++
			if i < len(lines) && !isBlank(lines[i]) && !isHeading(lines[i]) {
				out = append(out, "")
				inserted++
			}

		case IsListItem(line):
			separate(IsListItem)
			// The run keeps its interior blank lines; it ends at the first
			// line that is neither blank nor a list item.
			for i < len(lines) && (IsListItem(lines[i]) || isBlank(lines[i])) {
				out = append(out, lines[i])
				i++
			}
			if i < len(lines) && !isBlank(out[len(out)-1]) {
				out = append(out, "")
				inserted++
			}

		default:
			out = append(out, line)
			i++
		}
	}

	joined := strings.Join(out, "\n")
	collapsed := blankRun.ReplaceAllString(joined, "\n\n")
	collapsed = strings.TrimRightFunc(collapsed, unicode.IsSpace)

	if collapsed == "" {
		return "", inserted, blankLines(joined)
	}
	return collapsed + "\n", inserted, blankLines(joined) - blankLines(collapsed)
}
