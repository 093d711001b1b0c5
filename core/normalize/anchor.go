// Package normalize - heading anchor derivation.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	// emphasisMarkers are the Markdown markers stripped before slugging.
	emphasisMarkers = regexp.MustCompile("[#*_`]")
	// nonSlugChars is anything that is not a letter, digit, space or hyphen.
	nonSlugChars = regexp.MustCompile(`[^\p{L}\p{N}\p{Z}\s-]`)
	// separatorRuns collapse into a single hyphen.
	separatorRuns = regexp.MustCompile(`[\p{Z}\s-]+`)
)

// Anchor derives the same-document link target for a heading.
// Non-ASCII letters survive: Anchor("Säkerhet") == "säkerhet".
func Anchor(heading string) string {
	// NFC first so decomposed accents stay attached to their letters.
	text := emphasisMarkers.ReplaceAllString(norm.NFC.String(heading), "")
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	// Casers carry state, so each call gets its own.
	text = cases.Lower(language.Und).String(text)
	text = nonSlugChars.ReplaceAllString(text, "")
	text = separatorRuns.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}
