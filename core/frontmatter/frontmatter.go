package frontmatter

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/docx2md/core"
)

const delimiter = "---\n"

// properties is the front matter written for a converted note.
type properties struct {
	Title      string `yaml:"title,omitempty"`
	SourceFile string `yaml:"source_file,omitempty"`
}

// Build returns the front matter block for meta followed by a blank line,
// or "" when there is nothing to emit.
func Build(meta core.DocumentMetadata) (string, error) {
	p := properties{Title: strings.TrimSpace(meta.Title), SourceFile: meta.SourceFile}
	if p == (properties{}) {
		return "", nil
	}

	out, err := yaml.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding front matter: %w", err)
	}
	return delimiter + string(out) + delimiter + "\n", nil
}

// Properties holds the decoded keys of an existing front matter block.
type Properties map[string]any

// Split separates a leading front matter block from the Markdown body.
// front is the block exactly as written, including its delimiters, so the
// caller can put it back untouched. Documents without one return an empty
// front and the whole source as body.
func Split(source string) (Properties, string, string, error) {
	props := Properties{}
	rest, err := frontmatter.Parse(strings.NewReader(source), &props)
	if err != nil {
		return nil, "", "", fmt.Errorf("parsing front matter: %w", err)
	}

	body := string(rest)
	if len(body) == len(source) {
		return props, "", source, nil
	}
	if strings.HasSuffix(source, body) {
		front := source[:len(source)-len(body)]
		if strings.TrimSpace(front) == "" {
			return props, "", source, nil
		}
		return props, front, body, nil
	}

	// The parser rewrote the body; cut the block at its closing delimiter.
	front, body, ok := cut(source)
	if !ok {
		return nil, "", "", fmt.Errorf("parsing front matter: closing delimiter not found")
	}
	return props, front, body, nil
}

// cut splits source after the line that closes its opening delimiter.
func cut(source string) (string, string, bool) {
	lines := strings.SplitAfter(source, "\n")
	open := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		open = i
		break
	}
	if open < 0 {
		return "", source, false
	}
	delim := strings.TrimSpace(lines[open])
	closing := delim
	switch delim {
	case "+++":
	case "{":
		closing = "}"
	default:
		if delim != strings.TrimSpace(delimiter) {
			return "", source, false
		}
	}
	for i := open + 1; i < len(lines); i++ {
		if t := strings.TrimSpace(lines[i]); t == closing || (delim == "---" && t == "...") {
			front := strings.Join(lines[:i+1], "")
			return front, source[len(front):], true
		}
	}
	return "", source, false
}
