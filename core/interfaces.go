// Package core defines the pipeline interfaces for docx2md.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// DocumentMetadata holds the document properties carried into front matter.
type DocumentMetadata struct {
	Title      string `json:"title,omitempty"`
	Author     string `json:"author,omitempty"`
	Created    string `json:"created,omitempty"`  // ISO8601, as stored in the document
	Modified   string `json:"modified,omitempty"` // ISO8601, as stored in the document
	SourceFile string `json:"source_file"`
}

// Heading represents a single heading found in the Markdown.
type Heading struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

// Link represents a hyperlink found in the Markdown.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// DocumentStructure holds structural metadata parsed from the Markdown.
type DocumentStructure struct {
	Headings []Heading `json:"headings"`
	Links    []Link    `json:"links"`
	Lists    int       `json:"lists"`
	Tables   int       `json:"tables"`
}

// DocumentJSON is the complete JSON output for a single document.
type DocumentJSON struct {
	Metadata  DocumentMetadata  `json:"metadata"`
	Markdown  string            `json:"markdown"`
	Structure DocumentStructure `json:"structure"`
}

// NormalizeReport summarises what the normalization passes changed.
type NormalizeReport struct {
	BlankLinesInserted int `json:"blank_lines_inserted"`
	BlankLinesRemoved  int `json:"blank_lines_removed"`
	LinksRewritten     int `json:"links_rewritten"`
	LinksStripped      int `json:"links_stripped"`
	ItemsRenumbered    int `json:"items_renumbered"`
}

// Changed reports whether any pass modified the document.
func (r NormalizeReport) Changed() bool {
	return r != NormalizeReport{}
}

// Converter turns a .docx file into raw Markdown.
// mediaDir is where extracted images should be written, if the converter supports it.
type Converter interface {
	Name() string
	Convert(ctx context.Context, docxPath string, mediaDir string) (string, error)
}

// Normalizer repairs structural defects in converter output.
type Normalizer interface {
	Normalize(markdown string) (string, NormalizeReport)
}

// Renderer converts Markdown (and metadata) into a final output format.
type Renderer interface {
	Render(markdown string, meta DocumentMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
