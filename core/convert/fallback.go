// Package convert - pure-Go fallback converter.
// docx body → HTML (core/docx) → cleaned HTML (core/extract) → Markdown
// (html-to-markdown). Images are not extracted on this path.
package convert

import (
	"context"
	"fmt"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/gaurav-prasanna/docx2md/core/docx"
	"github.com/gaurav-prasanna/docx2md/core/extract"
)

// Fallback converts documents without external tools.
type Fallback struct {
	extractor *extract.HTMLExtractor
	markdown  *converter.Converter
}

// NewFallback creates a Fallback converter.
func NewFallback() *Fallback {
	return &Fallback{
		extractor: extract.New(),
		markdown: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(
					commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
					commonmark.WithStrongDelimiter("**"),
				),
				table.NewTablePlugin(),
			),
		),
	}
}

// Name identifies the converter in progress output.
func (f *Fallback) Name() string {
	return "go"
}

// Convert renders the document body and converts it to Markdown.
// mediaDir is unused: images are dropped on this path.
func (f *Fallback) Convert(ctx context.Context, docxPath string, mediaDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	html, err := docx.RenderHTML(docxPath)
	if err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}

	content, err := f.extractor.Extract(html)
	if err != nil {
		return "", fmt.Errorf("cleaning HTML: %w", err)
	}

	markdown, err := f.markdown.ConvertString(content)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return NormalizeLineEndings(markdown), nil
}
