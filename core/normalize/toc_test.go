package normalize

import (
	"strings"
	"testing"
)

func TestRewriteTOCLinksBasic(t *testing.T) {
	in := `# Introduction

[1. Introduction](#_Toc123456789)
[2. Main Section](#_Toc987654321)

# Main Section

Some content here.`

	got := RewriteTOCLinks(in)
	for _, want := range []string{"[1. Introduction](#introduction)", "[2. Main Section](#main-section)"} {
		if !strings.Contains(got, want) {
			t.Errorf("RewriteTOCLinks() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "#_Toc") {
		t.Errorf("RewriteTOCLinks() left a _Toc link:\n%s", got)
	}
}

func TestRewriteTOCLinksPageNumbers(t *testing.T) {
	in := `# Introduction

[1. Introduction 5](#_Toc123456789)
[2. Main Section 12](#_Toc987654321)

# Introduction

# Main Section`

	got := RewriteTOCLinks(in)
	for _, want := range []string{"[1. Introduction 5](#introduction)", "[2. Main Section 12](#main-section)"} {
		if !strings.Contains(got, want) {
			t.Errorf("RewriteTOCLinks() missing %q in:\n%s", want, got)
		}
	}
}

func TestRewriteTOCLinksMultiLevelNumbering(t *testing.T) {
	in := `# Förvaring och lagring

[3.1.3 Förvaring och lagring 4](#_Toc180757069)

# Förvaring och lagring

Some content.`

	got := RewriteTOCLinks(in)
	want := "[3.1.3 Förvaring och lagring 4](#förvaring-och-lagring)"
	if !strings.Contains(got, want) {
		t.Errorf("RewriteTOCLinks() missing %q in:\n%s", want, got)
	}
}

func TestRewriteTOCLinksNoMatch(t *testing.T) {
	in := `# Introduction

[Nonexistent Section](#_Toc123456789)

# Introduction`

	got := RewriteTOCLinks(in)
	if !strings.Contains(got, "\nNonexistent Section\n") {
		t.Errorf("RewriteTOCLinks() should keep the label as text:\n%s", got)
	}
	if strings.Contains(got, "#_Toc") || strings.Contains(got, "[Nonexistent Section]") {
		t.Errorf("RewriteTOCLinks() should remove the link:\n%s", got)
	}
}

func TestRewriteTOCLinksHeadingPageNumber(t *testing.T) {
	// The page number baked into the heading only matches through the
	// simplified key.
	in := "## Scope 7\n\n[Scope](#_Toc1)"
	got := RewriteTOCLinks(in)
	if !strings.Contains(got, "[Scope](#scope-7)") {
		t.Errorf("RewriteTOCLinks() = %q", got)
	}
}

func TestRewriteTOCLinksPartialMatchFirstWins(t *testing.T) {
	in := "# Section 1 Overview\n# Section 1.1 Details\n\n[Section 1](#_Toc42)"
	got := RewriteTOCLinks(in)
	if !strings.Contains(got, "[Section 1](#section-1-overview)") {
		t.Errorf("RewriteTOCLinks() should pick the first containing heading: %q", got)
	}
}

func TestRewriteTOCLinksCaseInsensitive(t *testing.T) {
	in := "# BACKGROUND AND GOALS\n\n[2. Background](#_Toc7)"
	got := RewriteTOCLinks(in)
	if !strings.Contains(got, "[2. Background](#background-and-goals)") {
		t.Errorf("RewriteTOCLinks() = %q", got)
	}
}

func TestRewriteTOCLinksLeavesOtherLinks(t *testing.T) {
	in := "# Intro\n\nSee [site](https://example.com), [ref](#intro) and [x](#_TocABC)."
	if got := RewriteTOCLinks(in); got != in {
		t.Errorf("RewriteTOCLinks() changed unrelated links:\n%s", got)
	}
}

func TestRewriteTOCLinksSeveralPerLine(t *testing.T) {
	in := "# Alpha\n# Beta\n\n[Alpha](#_Toc1) | [Beta](#_Toc2) | [Gamma](#_Toc3)"
	got := RewriteTOCLinks(in)
	want := "[Alpha](#alpha) | [Beta](#beta) | Gamma"
	if !strings.Contains(got, want) {
		t.Errorf("RewriteTOCLinks() = %q, want line %q", got, want)
	}
}

func TestHeadingIndexLastWriteWins(t *testing.T) {
	index := buildHeadingIndex([]string{"# Notes", "## **Notes**"})
	if len(index.keys) != 2 {
		t.Fatalf("keys = %v, want [Notes **Notes**]", index.keys)
	}

	index = newHeadingIndex()
	index.set("a", "first")
	index.set("b", "second")
	index.set("a", "third")
	if index.keys[0] != "a" || index.anchors["a"] != "third" {
		t.Errorf("index = %v %v, want key a first with anchor third", index.keys, index.anchors)
	}
}

func TestTOCLookupKey(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"1. Introduction", "Introduction"},
		{"2 Main Section 12", "Main Section"},
		{"3.1.3 Förvaring och lagring 4", "1.3 Förvaring och lagring"},
		{"Appendix", "Appendix"},
	}
	for _, tt := range tests {
		if got := tocLookupKey(tt.label); got != tt.want {
			t.Errorf("tocLookupKey(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
