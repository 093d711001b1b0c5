// Package render provides the output renderers for converted documents.
// This file implements the Markdown renderer, the default note format.
package render

import (
	"github.com/gaurav-prasanna/docx2md/core"
	"github.com/gaurav-prasanna/docx2md/core/frontmatter"
)

// MarkdownRenderer writes the normalized Markdown, optionally headed by a
// YAML front matter block built from the document metadata.
type MarkdownRenderer struct {
	FrontMatter bool
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer(frontMatter bool) *MarkdownRenderer {
	return &MarkdownRenderer{FrontMatter: frontMatter}
}

// Render returns the note as bytes.
func (r *MarkdownRenderer) Render(markdown string, meta core.DocumentMetadata) ([]byte, error) {
	if !r.FrontMatter {
		return []byte(markdown), nil
	}
	block, err := frontmatter.Build(meta)
	if err != nil {
		return nil, err
	}
	return []byte(block + markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
