package normalize

import (
	"strings"
	"testing"
)

func TestIsListItem(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"* Item", true},
		{"- Item", true},
		{"+ Item", true},
		{"1. Numbered item", true},
		{"10. Double digit", true},
		{"3) Paren item", true},
		{"   - Indented", true},
		{"Not a list", false},
		{"# Header", false},
		{"", false},
		{"   ", false},
		{"-no space", false},
		{"**bold**", false},
		{"1.5 million", false},
	}
	for _, tt := range tests {
		if got := IsListItem(tt.line); got != tt.want {
			t.Errorf("IsListItem(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestStructureHeadings(t *testing.T) {
	in := "Some text\n# Header 1\nMore text\n## Header 2\nEven more text"
	want := "Some text\n\n# Header 1\n\nMore text\n\n## Header 2\n\nEven more text\n"
	if got := Structure(in); got != want {
		t.Errorf("Structure() =\n%q\nwant\n%q", got, want)
	}
}

func TestStructureAdjacentHeadings(t *testing.T) {
	in := "# Title\n## Subtitle\nBody"
	want := "# Title\n## Subtitle\n\nBody\n"
	if got := Structure(in); got != want {
		t.Errorf("Structure() = %q, want %q", got, want)
	}
}

func TestStructureLists(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "surrounded",
			in:   "Some text\n* Item 1\n* Item 2\nMore text",
			want: "Some text\n\n* Item 1\n* Item 2\n\nMore text\n",
		},
		{
			name: "interior blank kept",
			in:   "Intro\n- a\n\n- b\nOutro",
			want: "Intro\n\n- a\n\n- b\n\nOutro\n",
		},
		{
			name: "trailing blank in run",
			in:   "- a\n\nText",
			want: "- a\n\nText\n",
		},
		{
			name: "at start and end",
			in:   "1. one\n2. two",
			want: "1. one\n2. two\n",
		},
		{
			name: "list before heading",
			in:   "- a\n# H\ntext",
			want: "- a\n\n# H\n\ntext\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Structure(tt.in); got != tt.want {
				t.Errorf("Structure() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructureCollapsesBlankLines(t *testing.T) {
	in := "# Header 1\n\n\n\nSome content\n\n\nAnother line\n\n\n\n# Header 2"
	got := Structure(in)
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("Structure() left a blank-line run: %q", got)
	}
	if !strings.Contains(got, "Header 1\n\nSome content\n\nAnother line\n\n# Header 2") {
		t.Errorf("Structure() = %q", got)
	}
}

func TestStructureWhitespaceOnlyBlankLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces and tabs", "a\n  \n\t\n \nb", "a\n\nb\n"},
		{"non-breaking space", "a\n\n\u00a0\n\nb", "a\n\nb\n"},
		{"mixed unicode spaces", "a\n\u00a0\u00a0\n \u00a0\t\n\u2003\nb", "a\n\nb\n"},
		{"before heading", "a\n\u00a0\n\u00a0\n# H", "a\n\n# H\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Structure(tt.in); got != tt.want {
				t.Errorf("Structure(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStructureTrailingNewline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Some content without newline", "Some content without newline\n"},
		{"text\n\n\n\n", "text\n"},
		{"text   \n  ", "text\n"},
		{"", ""},
		{"\n\n  \n", ""},
	}
	for _, tt := range tests {
		if got := Structure(tt.in); got != tt.want {
			t.Errorf("Structure(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStructureComplexDocument(t *testing.T) {
	in := `# Title


Some intro text
## Section 1
* Point 1
* Point 2
Some text after list
### Subsection
1. First
2. Second
Final text`

	lines := strings.Split(Structure(in), "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, "#") {
			continue
		}
		if i > 0 && strings.TrimSpace(lines[i-1]) != "" {
			t.Errorf("heading %q has no blank line before it", line)
		}
		if i < len(lines)-1 && !strings.HasPrefix(lines[i+1], "#") && strings.TrimSpace(lines[i+1]) != "" {
			t.Errorf("heading %q has no blank line after it", line)
		}
	}
}

// structureCorpus mixes headings, lists, blank runs and odd whitespace.
var structureCorpus = []string{
	"",
	"\n",
	"plain",
	"Some text\n# Header 1\nMore text\n## Header 2\nEven more text",
	"# A\n# B\n# C",
	"- a\n\n\n- b\n\n\n\ntext\n\n\n",
	"text\n1. one\n  2. two\n\n3) three\n# H\n* x",
	"  \n\t\n# Indented?\n   # yes\n+ plus\n",
	"# H\n\n\n\n\n\n",
	"\n\n\nleading blanks\n# H",
	"a\r\nb",
	"1. **A**\n1. **B**\nBody\n## Sub\n- x\n- y\nend   ",
}

func TestStructureIdempotent(t *testing.T) {
	for _, in := range structureCorpus {
		once := Structure(in)
		twice := Structure(once)
		if once != twice {
			t.Errorf("Structure not idempotent for %q:\nonce  %q\ntwice %q", in, once, twice)
		}
	}
}

func TestStructureInvariants(t *testing.T) {
	for _, in := range structureCorpus {
		got := Structure(in)
		if strings.Contains(got, "\n\n\n") {
			t.Errorf("Structure(%q) contains a blank-line run: %q", in, got)
		}
		if got == "" {
			continue
		}
		if !strings.HasSuffix(got, "\n") || strings.HasSuffix(got, "\n\n") {
			t.Errorf("Structure(%q) = %q, want exactly one trailing newline", in, got)
		}
	}
}
