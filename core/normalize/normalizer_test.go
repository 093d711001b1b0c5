package normalize

import (
	"strings"
	"sync"
	"testing"

	"github.com/gaurav-prasanna/docx2md/core"
)

const pandocLikeOutput = `**Quarterly Report**
[1. Introduction 2](#_Toc100)
[2. Scope 3](#_Toc101)
[3. Appendix 9](#_Toc102)
# Introduction
Text right under the heading.



1. **Background**
Paragraph.
1. **Goals**
- keep it short
- keep it clear
## Scope
1. **Limits**`

func TestNormalizeEndToEnd(t *testing.T) {
	n := New()
	got, report := n.Normalize(pandocLikeOutput)

	want := `**Quarterly Report**
[1. Introduction 2](#introduction)
[2. Scope 3](#scope)
3. Appendix 9

# Introduction

Text right under the heading.

1. **Background**

Paragraph.

2. **Goals**
- keep it short
- keep it clear

## Scope

3. **Limits**
`
	if got != want {
		t.Errorf("Normalize() =\n%s\nwant\n%s", got, want)
	}

	wantReport := core.NormalizeReport{
		BlankLinesInserted: 6,
		BlankLinesRemoved:  2,
		LinksRewritten:     2,
		LinksStripped:      1,
		ItemsRenumbered:    2,
	}
	if report != wantReport {
		t.Errorf("report = %+v, want %+v", report, wantReport)
	}
}

func TestNormalizeCleanInputUnchanged(t *testing.T) {
	in := "# Title\n\nBody text.\n\n- a\n- b\n"
	got, report := New().Normalize(in)
	if got != in {
		t.Errorf("Normalize() = %q, want %q", got, in)
	}
	if report.Changed() {
		t.Errorf("report = %+v, want no changes", report)
	}
}

func TestNormalizeTotal(t *testing.T) {
	inputs := []string{
		"",
		"[",
		"[](#_Toc)",
		"[]](#_Toc1)",
		"](#_Toc1)",
		"#",
		"1.",
		"1. **",
		strings.Repeat("\n", 50),
		"\x00\xff\xfe",
	}
	n := New()
	for _, in := range inputs {
		got, _ := n.Normalize(in)
		if strings.Contains(got, "\n\n\n") {
			t.Errorf("Normalize(%q) = %q", in, got)
		}
	}
}

func TestNormalizeConcurrent(t *testing.T) {
	n := New()
	want, _ := n.Normalize(pandocLikeOutput)

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got, _ := n.Normalize(pandocLikeOutput); got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent Normalize() = %q", got)
	}
}
