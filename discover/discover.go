// Package discover finds the .docx documents to convert.
// Inputs may mix files and directories; directories are listed, or walked
// when recursive is set. Discovery never stops on a single bad input:
// skipped files and missing paths are collected in the Result.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Job is a document to convert together with the input root it was found under.
// Root is used to mirror the directory structure in the output directory.
type Job struct {
	Path string
	Root string
}

// Skipped is a file that was found but will not be converted.
type Skipped struct {
	Path   string
	Reason string
}

// Result holds the outcome of a discovery run.
type Result struct {
	Jobs    []Job
	Skipped []Skipped
	Missing []string
}

// Discover finds all .docx files reachable from inputs.
// Explicit files use their parent directory as root.
func Discover(inputs []string, recursive bool) (*Result, error) {
	queue := NewQueue()
	result := &Result{}

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			if os.IsNotExist(err) {
				result.Missing = append(result.Missing, input)
				continue
			}
			return nil, fmt.Errorf("inspecting %s: %w", input, err)
		}

		if !info.IsDir() {
			if reason := SkipReason(input); reason != "" {
				result.Skipped = append(result.Skipped, Skipped{Path: input, Reason: reason})
				continue
			}
			queue.Add(Job{Path: input, Root: filepath.Dir(input)})
			continue
		}

		paths, err := listDocx(input, recursive)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", input, err)
		}
		for _, path := range paths {
			if reason := SkipReason(path); reason != "" {
				result.Skipped = append(result.Skipped, Skipped{Path: path, Reason: reason})
				continue
			}
			queue.Add(Job{Path: path, Root: input})
		}
	}

	result.Jobs = queue.All()
	return result, nil
}

// listDocx returns the *.docx files in dir, descending into subdirectories
// when recursive is set. Hidden subdirectories are walked like any other;
// hidden files are filtered later by SkipReason.
func listDocx(dir string, recursive bool) ([]string, error) {
	var paths []string

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !entry.IsDir() && hasDocxExt(entry.Name()) {
				paths = append(paths, filepath.Join(dir, entry.Name()))
			}
		}
		return paths, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasDocxExt(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

func hasDocxExt(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".docx")
}
