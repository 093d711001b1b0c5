// Package docx - minimal HTML rendering of the document body.
// Used by the fallback converter when Pandoc is unavailable. It covers what
// note-taking output needs: headings, paragraphs, bold/italic runs, lists,
// hyperlinks (including Word's internal _Toc bookmarks) and simple tables.
// Images, fields, footnotes and comments are not rendered.
package docx

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

var (
	bodyExpr         = xpath.MustCompile(`//*[local-name()='body']`)
	styleExpr        = xpath.MustCompile(`//*[local-name()='style']`)
	numExpr          = xpath.MustCompile(`//*[local-name()='num']`)
	abstractNumExpr  = xpath.MustCompile(`//*[local-name()='abstractNum']`)
	relationshipExpr = xpath.MustCompile(`//*[local-name()='Relationship']`)
)

// headingStyle matches style names and ids such as "heading 2" or "Heading2".
var headingStyle = regexp.MustCompile(`^heading\s*([1-6])$`)

// renderer carries the lookup tables needed while walking document.xml.
type renderer struct {
	styles    map[string]string // styleId → lowercased style name
	listKinds map[string]string // numId + ":" + ilvl → "ol" or "ul"
	links     map[string]string // relationship id → target URL
	out       strings.Builder
}

// RenderHTML renders the body of the .docx document at path as an HTML fragment.
func RenderHTML(path string) (string, error) {
	pkg, err := Open(path)
	if err != nil {
		return "", err
	}
	defer pkg.Close()

	doc, err := pkg.Part(partDocument)
	if err != nil {
		return "", err
	}

	r := &renderer{}
	if err := r.load(pkg); err != nil {
		return "", err
	}

	body := xmlquery.QuerySelector(doc, bodyExpr)
	if body == nil {
		return "", fmt.Errorf("%s has no body", partDocument)
	}

	r.out.WriteString("<html><body>\n")
	r.blocks(body)
	r.out.WriteString("</body></html>\n")
	return r.out.String(), nil
}

// load reads the optional styles, numbering and relationship parts.
func (r *renderer) load(pkg *Package) error {
	r.styles = make(map[string]string)
	r.listKinds = make(map[string]string)
	r.links = make(map[string]string)

	styles, err := pkg.optionalPart(partStyles)
	if err != nil {
		return err
	}
	if styles != nil {
		for _, s := range xmlquery.QuerySelectorAll(styles, styleExpr) {
			id := attr(s, "styleId")
			if name := attr(child(s, "name"), "val"); id != "" && name != "" {
				r.styles[id] = strings.ToLower(name)
			}
		}
	}

	numbering, err := pkg.optionalPart(partNumbering)
	if err != nil {
		return err
	}
	if numbering != nil {
		// abstractNumId → ilvl → numFmt
		formats := make(map[string]map[string]string)
		for _, a := range xmlquery.QuerySelectorAll(numbering, abstractNumExpr) {
			levels := make(map[string]string)
			for lvl := a.FirstChild; lvl != nil; lvl = lvl.NextSibling {
				if lvl.Type == xmlquery.ElementNode && lvl.Data == "lvl" {
					levels[attr(lvl, "ilvl")] = attr(child(lvl, "numFmt"), "val")
				}
			}
			formats[attr(a, "abstractNumId")] = levels
		}
		for _, n := range xmlquery.QuerySelectorAll(numbering, numExpr) {
			levels := formats[attr(child(n, "abstractNumId"), "val")]
			for ilvl, format := range levels {
				kind := "ol"
				if format == "bullet" || format == "none" {
					kind = "ul"
				}
				r.listKinds[attr(n, "numId")+":"+ilvl] = kind
			}
		}
	}

	rels, err := pkg.optionalPart(partDocumentRels)
	if err != nil {
		return err
	}
	if rels != nil {
		for _, rel := range xmlquery.QuerySelectorAll(rels, relationshipExpr) {
			if strings.HasSuffix(attr(rel, "Type"), "/hyperlink") {
				r.links[attr(rel, "Id")] = attr(rel, "Target")
			}
		}
	}
	return nil
}

// blocks renders the block-level children of a body or content control.
// Consecutive paragraphs of the same list share one <ol>/<ul>.
func (r *renderer) blocks(parent *xmlquery.Node) {
	openList, openKey := "", ""
	closeList := func() {
		if openList != "" {
			fmt.Fprintf(&r.out, "</%s>\n", openList)
			openList, openKey = "", ""
		}
	}

	for n := parent.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != xmlquery.ElementNode {
			continue
		}
		switch n.Data {
		case "p":
			inner := r.inline(n)
			if kind, key := r.listKind(n); kind != "" {
				if key != openKey {
					closeList()
					fmt.Fprintf(&r.out, "<%s>\n", kind)
					openList, openKey = kind, key
				}
				fmt.Fprintf(&r.out, "<li>%s</li>\n", inner)
				continue
			}
			closeList()
			if level := r.headingLevel(n); level > 0 {
				fmt.Fprintf(&r.out, "<h%d>%s</h%d>\n", level, inner, level)
			} else {
				fmt.Fprintf(&r.out, "<p>%s</p>\n", inner)
			}

		case "tbl":
			closeList()
			r.table(n)

		case "sdt":
			// Content controls wrap the generated table of contents.
			closeList()
			if content := child(n, "sdtContent"); content != nil {
				r.blocks(content)
			}
		}
	}
	closeList()
}

// paragraphStyle returns the lowercased style name of a paragraph.
func (r *renderer) paragraphStyle(p *xmlquery.Node) string {
	id := attr(child(child(p, "pPr"), "pStyle"), "val")
	if id == "" {
		return ""
	}
	if name, ok := r.styles[id]; ok {
		return name
	}
	return strings.ToLower(id)
}

func (r *renderer) headingLevel(p *xmlquery.Node) int {
	style := r.paragraphStyle(p)
	if style == "title" {
		return 1
	}
	if m := headingStyle.FindStringSubmatch(style); m != nil {
		level, _ := strconv.Atoi(m[1])
		return level
	}
	return 0
}

// listKind returns "ol" or "ul" for numbered paragraphs, and the key that
// identifies the list the paragraph belongs to.
func (r *renderer) listKind(p *xmlquery.Node) (string, string) {
	numPr := child(child(p, "pPr"), "numPr")
	if numPr == nil {
		return "", ""
	}
	numID := attr(child(numPr, "numId"), "val")
	if numID == "" || numID == "0" {
		return "", ""
	}
	ilvl := attr(child(numPr, "ilvl"), "val")
	if ilvl == "" {
		ilvl = "0"
	}
	kind, ok := r.listKinds[numID+":"+ilvl]
	if !ok {
		kind = "ul"
	}
	return kind, numID
}

// inline renders the runs and hyperlinks of a paragraph.
func (r *renderer) inline(p *xmlquery.Node) string {
	var b strings.Builder
	for n := p.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != xmlquery.ElementNode {
			continue
		}
		switch n.Data {
		case "r":
			b.WriteString(run(n))
		case "hyperlink":
			text := r.inline(n)
			href := r.links[attr(n, "id")]
			if anchor := attr(n, "anchor"); anchor != "" {
				href = "#" + anchor
			}
			if href == "" {
				b.WriteString(text)
				continue
			}
			fmt.Fprintf(&b, `<a href="%s">%s</a>`, html.EscapeString(href), text)
		case "ins", "smartTag", "fldSimple", "customXml":
			b.WriteString(r.inline(n))
		}
	}
	return b.String()
}

// run renders the text of a single run with its bold/italic formatting.
func run(n *xmlquery.Node) string {
	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		switch c.Data {
		case "t":
			text.WriteString(html.EscapeString(c.InnerText()))
		case "tab":
			text.WriteString(" ")
		case "br", "cr":
			text.WriteString("<br>")
		case "noBreakHyphen":
			text.WriteString("-")
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return text.String()
	}

	out := text.String()
	rPr := child(n, "rPr")
	if toggled(child(rPr, "i")) {
		out = "<em>" + out + "</em>"
	}
	if toggled(child(rPr, "b")) {
		out = "<strong>" + out + "</strong>"
	}
	return out
}

// toggled reports whether an on/off property such as <w:b/> is switched on.
func toggled(n *xmlquery.Node) bool {
	if n == nil {
		return false
	}
	switch attr(n, "val") {
	case "0", "false", "off":
		return false
	}
	return true
}

// table renders a w:tbl; the first row becomes the header row.
func (r *renderer) table(tbl *xmlquery.Node) {
	r.out.WriteString("<table>\n")
	first := true
	for tr := tbl.FirstChild; tr != nil; tr = tr.NextSibling {
		if tr.Type != xmlquery.ElementNode || tr.Data != "tr" {
			continue
		}
		cell := "td"
		if first {
			cell = "th"
		}
		r.out.WriteString("<tr>")
		for tc := tr.FirstChild; tc != nil; tc = tc.NextSibling {
			if tc.Type != xmlquery.ElementNode || tc.Data != "tc" {
				continue
			}
			var parts []string
			for p := tc.FirstChild; p != nil; p = p.NextSibling {
				if p.Type == xmlquery.ElementNode && p.Data == "p" {
					if text := strings.TrimSpace(r.inline(p)); text != "" {
						parts = append(parts, text)
					}
				}
			}
			fmt.Fprintf(&r.out, "<%s>%s</%s>", cell, strings.Join(parts, " "), cell)
		}
		r.out.WriteString("</tr>\n")
		first = false
	}
	r.out.WriteString("</table>\n")
}
