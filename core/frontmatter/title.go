// Package frontmatter builds and detects the YAML front matter block that
// heads each converted note.
package frontmatter

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/docx2md/core"
)

// maxBoldTitle is the length limit for a bold line to count as a title.
const maxBoldTitle = 100

// genericTitles match placeholder titles that Word templates leave behind.
var genericTitles = []*regexp.Regexp{
	regexp.MustCompile(`^report\s*v?\d*\.?\d*$`),
	regexp.MustCompile(`^document\s*v?\d*\.?\d*$`),
	regexp.MustCompile(`^untitled`),
	regexp.MustCompile(`^new\s+document`),
	regexp.MustCompile(`^draft`),
	regexp.MustCompile(`^\s*$`),
}

// bodyWords mark a bold line as a section label rather than a title.
var bodyWords = []string{
	"innehållsförteckning",
	"table of contents",
	"inledning",
	"introduction",
}

// ExtractTitle returns the first "# " heading of markdown, or a short bold
// line such as "**Title**". It returns "" when neither is found.
func ExtractTitle(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
		if len(line) > 4 && strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") {
			title := strings.TrimSpace(line[2 : len(line)-2])
			if utf8.RuneCountInString(title) < maxBoldTitle && !mentionsBodyWord(title) {
				return title
			}
		}
	}
	return ""
}

func mentionsBodyWord(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range bodyWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// IsGenericTitle reports whether title is empty or a template placeholder.
func IsGenericTitle(title string) bool {
	t := strings.ToLower(strings.TrimSpace(title))
	for _, re := range genericTitles {
		if re.MatchString(t) {
			return true
		}
	}
	return false
}

// ResolveTitle returns meta with its title replaced by the content title
// when the metadata title is generic and the content has a better one.
func ResolveTitle(meta core.DocumentMetadata, markdown string) core.DocumentMetadata {
	if !IsGenericTitle(meta.Title) {
		return meta
	}
	if title := ExtractTitle(markdown); title != "" {
		meta.Title = title
	}
	return meta
}
