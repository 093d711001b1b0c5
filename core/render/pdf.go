// Package render - PDF renderer.
// A quick preview of the converted note using gofpdf: title, source file,
// headings, lists, tables and paragraphs. Images are not rendered.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/docx2md/core"
	"github.com/jung-kurt/gofpdf"
)

var (
	numberedItem  = regexp.MustCompile(`^\d+[.)]\s`)
	tableRule     = regexp.MustCompile(`^\|[-:| ]+\|$`)
	emphasis      = regexp.MustCompile(`(?:^|\s)[*_]([^*_]+)[*_](?:\s|$)`)
	inlineCode    = regexp.MustCompile("`([^`]+)`")
	markdownLink  = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
	headingLevels = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
)

// PDFRenderer renders Markdown content as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts Markdown into PDF bytes.
func (r *PDFRenderer) Render(markdown string, meta core.DocumentMetadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.AddPage()

	// Core fonts are cp1252; translate so Nordic letters survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(meta.Title), "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, tr("Source: "+meta.SourceFile), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	inCode := false
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inCode = !inCode
			pdf.Ln(2)
			continue
		}
		if inCode {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(line), "", "L", true)
			continue
		}

		switch {
		case trimmed == "":
			pdf.Ln(3)

		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			renderHeading(pdf, tr(cleanInline(strings.TrimLeft(trimmed, "# "))), level)

		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			pdf.SetFont("Helvetica", "", 10)
			indent(pdf, line)
			pdf.MultiCell(0, 5, tr("• "+cleanInline(trimmed[2:])), "", "L", false)
			pdf.SetLeftMargin(10)

		case numberedItem.MatchString(trimmed):
			pdf.SetFont("Helvetica", "", 10)
			indent(pdf, line)
			pdf.MultiCell(0, 5, tr(cleanInline(trimmed)), "", "L", false)
			pdf.SetLeftMargin(10)

		case tableRule.MatchString(trimmed):
			// Separator row between header and body.

		case strings.HasPrefix(trimmed, "|"):
			pdf.SetFont("Helvetica", "", 9)
			cells := strings.Split(strings.Trim(trimmed, "|"), "|")
			for i := range cells {
				cells[i] = cleanInline(cells[i])
			}
			pdf.MultiCell(0, 5, tr(strings.Join(cells, "   ")), "B", "L", false)

		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(cleanInline(line)), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	size, ok := headingLevels[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

// indent shifts the left margin for nested list items.
func indent(pdf *gofpdf.Fpdf, line string) {
	depth := (len(line) - len(strings.TrimLeft(line, " \t"))) / 2
	pdf.SetLeftMargin(10 + float64(depth)*5)
	pdf.SetX(10 + float64(depth)*5)
}

// cleanInline strips inline Markdown formatting.
func cleanInline(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = emphasis.ReplaceAllString(text, " $1 ")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = markdownLink.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
