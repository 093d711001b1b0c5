// Package normalize - sequential numbering repair.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// flattenedSection matches "1. **Label**" with optional indentation. Group 1
// is the indentation, so the "1." token starts where it ends.
var flattenedSection = regexp.MustCompile(`^(\s*)1\.\s*\*\*`)

// RenumberSections rewrites every "1. **Label**" line to 1., 2., 3., ... in
// document order. Converters flatten Word's auto-numbered run-in section
// headers to "1."; every other line, numbered or not, is left alone.
// Indentation is kept: only the "1." token is replaced.
func RenumberSections(text string) string {
	out, _ := renumberSections(text)
	return out
}

func renumberSections(text string) (string, int) {
	lines := strings.Split(text, "\n")
	counter := 0
	changed := 0

	for i, line := range lines {
		m := flattenedSection.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		counter++
		at := m[3]
		number := strconv.Itoa(counter)
		if number != "1" {
			changed++
		}
		lines[i] = line[:at] + number + "." + line[at+len("1."):]
	}

	return strings.Join(lines, "\n"), changed
}
