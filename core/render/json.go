// Package render - JSON renderer.
// Emits the document metadata, the normalized Markdown and the structure
// found by parsing it with goldmark: headings (with their anchors), links,
// and the number of lists and tables.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/gaurav-prasanna/docx2md/core"
	"github.com/gaurav-prasanna/docx2md/core/normalize"
)

// JSONRenderer produces structured JSON output from Markdown.
type JSONRenderer struct {
	markdown goldmark.Markdown
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{markdown: goldmark.New(goldmark.WithExtensions(extension.Table))}
}

// Render converts Markdown and metadata into indented JSON.
func (r *JSONRenderer) Render(markdown string, meta core.DocumentMetadata) ([]byte, error) {
	doc := core.DocumentJSON{
		Metadata:  meta,
		Markdown:  markdown,
		Structure: r.Structure(markdown),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// Structure parses markdown and collects its headings, links, lists and tables.
func (r *JSONRenderer) Structure(markdown string) core.DocumentStructure {
	source := []byte(markdown)
	root := r.markdown.Parser().Parse(text.NewReader(source))

	s := core.DocumentStructure{
		Headings: []core.Heading{},
		Links:    []core.Link{},
	}
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			title := plainText(node, source)
			anchor := normalize.Anchor(title)
			if line := sourceLine(node, source); strings.HasPrefix(strings.TrimSpace(line), "#") {
				anchor = normalize.HeadingAnchor(line)
			}
			s.Headings = append(s.Headings, core.Heading{
				Level:  node.Level,
				Text:   title,
				Anchor: anchor,
			})
		case *ast.Link:
			s.Links = append(s.Links, core.Link{
				Text: plainText(node, source),
				Href: string(node.Destination),
			})
		case *ast.AutoLink:
			s.Links = append(s.Links, core.Link{
				Text: string(node.Label(source)),
				Href: string(node.URL(source)),
			})
		case *ast.List:
			// Nested lists belong to their parent list.
			if _, nested := node.Parent().(*ast.ListItem); !nested {
				s.Lists++
			}
		case *extast.Table:
			s.Tables++
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return s
}

// sourceLine returns the source line a block starts on, or "" for an empty block.
func sourceLine(n ast.Node, source []byte) string {
	lines := n.Lines()
	if lines.Len() == 0 {
		return ""
	}
	start := lines.At(0).Start
	if i := bytes.LastIndexByte(source[:start], '\n'); i >= 0 {
		start = i + 1
	} else {
		start = 0
	}
	end := len(source)
	if i := bytes.IndexByte(source[start:], '\n'); i >= 0 {
		end = start + i
	}
	return string(source[start:end])
}

// plainText concatenates the text below n, dropping inline markup.
func plainText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.CodeSpan:
			for seg := t.FirstChild(); seg != nil; seg = seg.NextSibling() {
				if st, ok := seg.(*ast.Text); ok {
					buf.Write(st.Segment.Value(source))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}
