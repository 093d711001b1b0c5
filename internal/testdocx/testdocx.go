// Package testdocx builds small .docx packages for tests.
package testdocx

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	nsW  = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsCP = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
)

// Doc describes the parts of a test document.
type Doc struct {
	// Body is the inner XML of <w:body>, using the "w" and "r" prefixes.
	Body string
	// Title and Creator populate docProps/core.xml when either is set.
	Title   string
	Creator string
	// Numbering is the inner XML of <w:numbering>.
	Numbering string
	// Styles is the inner XML of <w:styles>.
	Styles string
	// Links maps relationship ids to external hyperlink targets.
	Links map[string]string
}

// Write creates dir/name as a .docx package and returns its path.
func Write(t testing.TB, dir, name string, doc Doc) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	add := func(part, content string) {
		w, err := zw.Create(part)
		if err != nil {
			t.Fatalf("adding %s: %v", part, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", part, err)
		}
	}

	add("[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`)
	add("word/document.xml", fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8" standalone="yes"?><w:document xmlns:w="%s" xmlns:r="%s"><w:body>%s</w:body></w:document>`,
		nsW, nsR, doc.Body))

	if doc.Title != "" || doc.Creator != "" {
		add("docProps/core.xml", fmt.Sprintf(
			`<?xml version="1.0" encoding="UTF-8"?><cp:coreProperties xmlns:cp="%s" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/">`+
				`<dc:title>%s</dc:title><dc:creator>%s</dc:creator>`+
				`<dcterms:created>2024-03-01T09:00:00Z</dcterms:created><dcterms:modified>2024-03-02T10:30:00Z</dcterms:modified>`+
				`</cp:coreProperties>`,
			nsCP, doc.Title, doc.Creator))
	}
	if doc.Numbering != "" {
		add("word/numbering.xml", fmt.Sprintf(`<w:numbering xmlns:w="%s">%s</w:numbering>`, nsW, doc.Numbering))
	}
	if doc.Styles != "" {
		add("word/styles.xml", fmt.Sprintf(`<w:styles xmlns:w="%s">%s</w:styles>`, nsW, doc.Styles))
	}
	if len(doc.Links) > 0 {
		var rels strings.Builder
		for id, target := range doc.Links {
			fmt.Fprintf(&rels,
				`<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="%s" TargetMode="External"/>`,
				id, target)
		}
		add("word/_rels/document.xml.rels", `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`+rels.String()+`</Relationships>`)
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("closing %s: %v", path, err)
	}
	return path
}

// Para returns a paragraph with an optional style id and plain text.
func Para(style, text string) string {
	var ppr string
	if style != "" {
		ppr = fmt.Sprintf(`<w:pPr><w:pStyle w:val="%s"/></w:pPr>`, style)
	}
	return fmt.Sprintf(`<w:p>%s<w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, ppr, text)
}

// ListItem returns a numbered paragraph at level 0 of list numID.
func ListItem(numID int, runs string) string {
	return fmt.Sprintf(`<w:p><w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="%d"/></w:numPr></w:pPr>%s</w:p>`, numID, runs)
}

// Run returns a run, bold and/or italic as requested.
func Run(text string, bold, italic bool) string {
	var rpr string
	if bold {
		rpr += "<w:b/>"
	}
	if italic {
		rpr += "<w:i/>"
	}
	if rpr != "" {
		rpr = "<w:rPr>" + rpr + "</w:rPr>"
	}
	return fmt.Sprintf(`<w:r>%s<w:t xml:space="preserve">%s</w:t></w:r>`, rpr, text)
}

// TOCEntry returns a table-of-contents paragraph linking to a _Toc bookmark,
// with the page number after a tab as Word writes it.
func TOCEntry(bookmark, text string, page int) string {
	return fmt.Sprintf(
		`<w:p><w:pPr><w:pStyle w:val="TOC1"/></w:pPr><w:hyperlink w:anchor="%s"><w:r><w:t>%s</w:t></w:r><w:r><w:tab/></w:r>`+
			`<w:r><w:fldChar w:fldCharType="begin"/></w:r><w:r><w:instrText xml:space="preserve"> PAGEREF %s \h </w:instrText></w:r>`+
			`<w:r><w:fldChar w:fldCharType="separate"/></w:r><w:r><w:t>%d</w:t></w:r><w:r><w:fldChar w:fldCharType="end"/></w:r></w:hyperlink></w:p>`,
		bookmark, text, bookmark, page)
}

// OrderedNumbering declares numId 1 as a decimal list and numId 2 as a bullet list.
const OrderedNumbering = `<w:abstractNum w:abstractNumId="0"><w:lvl w:ilvl="0"><w:numFmt w:val="decimal"/></w:lvl></w:abstractNum>` +
	`<w:abstractNum w:abstractNumId="1"><w:lvl w:ilvl="0"><w:numFmt w:val="bullet"/></w:lvl></w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`<w:num w:numId="2"><w:abstractNumId w:val="1"/></w:num>`
