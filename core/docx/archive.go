// Package docx reads the parts of a .docx package that docx2md needs:
// the core properties for front matter and the main document body for the
// fallback converter. A .docx file is a ZIP archive of OOXML parts.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/antchfx/xmlquery"
)

// Part names inside a .docx package.
const (
	partCoreProperties = "docProps/core.xml"
	partDocument       = "word/document.xml"
	partNumbering      = "word/numbering.xml"
	partStyles         = "word/styles.xml"
	partDocumentRels   = "word/_rels/document.xml.rels"
)

// maxPartSize bounds how much of a single part is read into memory.
const maxPartSize = 64 << 20

// ErrPartNotFound is returned when a package part is absent.
var ErrPartNotFound = errors.New("part not found")

// Package is an open .docx archive.
type Package struct {
	zr *zip.ReadCloser
}

// Open opens the .docx file at path.
func Open(path string) (*Package, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Package{zr: zr}, nil
}

// Close releases the underlying archive.
func (p *Package) Close() error {
	return p.zr.Close()
}

// Part parses the named package part as XML.
func (p *Package) Part(name string) (*xmlquery.Node, error) {
	for _, f := range p.zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(io.LimitReader(rc, maxPartSize))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		doc, err := xmlquery.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		return doc, nil
	}
	return nil, fmt.Errorf("%s: %w", name, ErrPartNotFound)
}

// optionalPart is Part that treats a missing part as nil.
func (p *Package) optionalPart(name string) (*xmlquery.Node, error) {
	doc, err := p.Part(name)
	if errors.Is(err, ErrPartNotFound) {
		return nil, nil
	}
	return doc, err
}

// attr returns the value of the attribute with the given local name,
// whatever namespace prefix the document uses.
func attr(n *xmlquery.Node, local string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// child returns the first element child of n with the given local name.
func child(n *xmlquery.Node, local string) *xmlquery.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == local {
			return c
		}
	}
	return nil
}
