package discover

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func jobNames(jobs []Job) []string {
	names := make([]string, 0, len(jobs))
	for _, job := range jobs {
		names = append(names, filepath.Base(job.Path))
	}
	sort.Strings(names)
	return names
}

func TestIsTemporaryFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"~$Document.docx", true},
		{"~$My File.docx", true},
		{"folder/~$Document.docx", true},
		{".~lock.Document.docx#", true},
		{"folder/.~lock.My File.docx#", true},
		{".hidden.docx", true},
		{"Document.docx", false},
		{"My Important File.docx", false},
		{"folder/subfolder/Report.docx", false},
		{"~Document.txt", false},
		{"File~.docx", false},
		{"~File.docx", false},
		{"lock.docx", false},
	}
	for _, tt := range tests {
		if got := IsTemporaryFile(tt.path); got != tt.want {
			t.Errorf("IsTemporaryFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestSkipReason(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"~$Report.docx", ReasonWordTemp},
		{".~lock.Report.docx#", ReasonLibreLock},
		{".Report.docx", ReasonHidden},
		{"Report.doc", ReasonUnsupported},
		{"Report.DOCM", ReasonUnsupported},
		{"notes.txt", ReasonNotDocx},
		{"Report.docx", ""},
		{"Report.DOCX", ""},
	}
	for _, tt := range tests {
		if got := SkipReason(tt.path); got != tt.want {
			t.Errorf("SkipReason(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDiscoverFiltersTemporaryFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "normal.docx"))
	touch(t, filepath.Join(dir, "~$temp.docx"))
	touch(t, filepath.Join(dir, ".~lock.document.docx#"))
	touch(t, filepath.Join(dir, "another.docx"))
	touch(t, filepath.Join(dir, "sub", "nested.docx"))

	result, err := Discover([]string{dir}, false)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	got := jobNames(result.Jobs)
	if len(got) != 2 || got[0] != "another.docx" || got[1] != "normal.docx" {
		t.Errorf("jobs = %v, want [another.docx normal.docx]", got)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Reason != ReasonWordTemp {
		t.Errorf("skipped = %+v, want one Word temporary file", result.Skipped)
	}
	for _, job := range result.Jobs {
		if job.Root != dir {
			t.Errorf("job %s root = %s, want %s", job.Path, job.Root, dir)
		}
	}
}

func TestDiscoverRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "top.docx"))
	touch(t, filepath.Join(dir, "a", "b", "deep.docx"))
	touch(t, filepath.Join(dir, ".archive", "old.docx"))
	touch(t, filepath.Join(dir, ".archive", ".draft.docx"))

	result, err := Discover([]string{dir}, true)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	got := jobNames(result.Jobs)
	if len(got) != 3 || got[0] != "deep.docx" || got[1] != "old.docx" || got[2] != "top.docx" {
		t.Errorf("jobs = %v, want [deep.docx old.docx top.docx]", got)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Reason != ReasonHidden {
		t.Errorf("skipped = %+v, want the hidden file only", result.Skipped)
	}
}

func TestDiscoverFilesAndMissing(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "single.docx")
	touch(t, file)
	legacy := filepath.Join(dir, "old.doc")
	touch(t, legacy)

	result, err := Discover([]string{file, legacy, filepath.Join(dir, "nope.docx"), file, dir}, false)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(result.Jobs) != 1 || result.Jobs[0].Path != file || result.Jobs[0].Root != dir {
		t.Errorf("jobs = %+v, want single.docx once", result.Jobs)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Reason != ReasonUnsupported {
		t.Errorf("skipped = %+v", result.Skipped)
	}
	if len(result.Missing) != 1 {
		t.Errorf("missing = %v, want one path", result.Missing)
	}
}

func TestQueueDeduplicates(t *testing.T) {
	q := NewQueue()
	if !q.Add(Job{Path: "a.docx"}) {
		t.Fatal("first Add() = false")
	}
	if q.Add(Job{Path: "./a.docx"}) {
		t.Error("Add() accepted the same file twice")
	}
	q.Add(Job{Path: "b.docx"})

	var order []string
	for q.HasNext() {
		order = append(order, q.Next().Path)
	}
	if len(order) != 2 || order[0] != "a.docx" || order[1] != "b.docx" {
		t.Errorf("order = %v", order)
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2", q.Len())
	}
}
