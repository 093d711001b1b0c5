// Package docx - core properties.
package docx

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/gaurav-prasanna/docx2md/core"
)

// Dublin Core fields in docProps/core.xml. Matched by local name so the
// namespace prefixes chosen by the authoring application do not matter.
var (
	titleExpr    = xpath.MustCompile(`//*[local-name()='title']`)
	creatorExpr  = xpath.MustCompile(`//*[local-name()='creator']`)
	createdExpr  = xpath.MustCompile(`//*[local-name()='created']`)
	modifiedExpr = xpath.MustCompile(`//*[local-name()='modified']`)
)

// ReadProperties extracts the Dublin Core properties of the document at path.
// SourceFile is always set, even when an error is returned, so callers can
// carry on with partial metadata. A package without core properties is not
// an error.
func ReadProperties(path string) (core.DocumentMetadata, error) {
	meta := core.DocumentMetadata{SourceFile: filepath.Base(path)}

	pkg, err := Open(path)
	if err != nil {
		return meta, err
	}
	defer pkg.Close()

	doc, err := pkg.Part(partCoreProperties)
	if errors.Is(err, ErrPartNotFound) {
		return meta, nil
	}
	if err != nil {
		return meta, err
	}

	meta.Title = selectText(doc, titleExpr)
	meta.Author = selectText(doc, creatorExpr)
	meta.Created = selectText(doc, createdExpr)
	meta.Modified = selectText(doc, modifiedExpr)
	return meta, nil
}

func selectText(doc *xmlquery.Node, expr *xpath.Expr) string {
	node := xmlquery.QuerySelector(doc, expr)
	if node == nil {
		return ""
	}
	return strings.TrimSpace(node.InnerText())
}
