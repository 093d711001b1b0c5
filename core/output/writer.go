// Package output handles file naming and writing for converted notes.
// With an output directory, notes either mirror the input tree or land flat
// in it; without one they are written next to their source document.
// Extracted images go under a media directory, one subdirectory per document.
package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultMediaDir is the media directory name used when none is configured.
const DefaultMediaDir = "media"

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// Writer decides where output goes and writes it to disk.
type Writer struct {
	OutputDir         string
	PreserveStructure bool
	MediaDir          string
	Overwrite         bool
}

// New creates a Writer. An empty mediaDir means DefaultMediaDir.
func New(outputDir string, preserveStructure bool, mediaDir string, overwrite bool) *Writer {
	if mediaDir == "" {
		mediaDir = DefaultMediaDir
	}
	return &Writer{
		OutputDir:         outputDir,
		PreserveStructure: preserveStructure,
		MediaDir:          mediaDir,
		Overwrite:         overwrite,
	}
}

// SanitizeFilename replaces spaces with underscores and drops characters
// that are invalid in file names. Case is preserved.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	return invalidFilenameChars.ReplaceAllString(name, "")
}

// Stem returns the file name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Target returns the output path for the document at path found under root.
// Example: root=in, path=in/a/My Doc.docx, OutputDir=out
//
//	preserve structure → out/a/My Doc.md
//	flat               → out/My_Doc.md
//	no OutputDir       → in/a/My_Doc.md
func (w *Writer) Target(path, root, ext string) string {
	if w.OutputDir == "" {
		return filepath.Join(filepath.Dir(path), SanitizeFilename(Stem(path))+ext)
	}
	if w.PreserveStructure && root != "" {
		if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.Join(w.OutputDir, strings.TrimSuffix(rel, filepath.Ext(rel))+ext)
		}
	}
	return filepath.Join(w.OutputDir, SanitizeFilename(Stem(path))+ext)
}

// MediaBase returns the media directory shared by documents written for path.
func (w *Writer) MediaBase(path string) string {
	if w.OutputDir != "" {
		return filepath.Join(w.OutputDir, w.MediaDir)
	}
	return filepath.Join(filepath.Dir(path), w.MediaDir)
}

// MediaFor returns the directory that receives the images of one document.
func (w *Writer) MediaFor(path string) string {
	return filepath.Join(w.MediaBase(path), SanitizeFilename(Stem(path)))
}

// Skip reports whether target already exists and must be left alone.
func (w *Writer) Skip(target string) bool {
	if w.Overwrite {
		return false
	}
	_, err := os.Stat(target)
	return err == nil
}

// Write writes data to target, creating parent directories as needed.
func (w *Writer) Write(target string, data []byte) error {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("writing file %s: %w", target, err)
	}
	return nil
}

// CleanupMedia removes the media directory of a document when nothing was
// extracted into it, and then the shared media base if that is empty too.
func CleanupMedia(base, stem string) error {
	removed, err := removeIfEmpty(filepath.Join(base, SanitizeFilename(stem)))
	if err != nil || !removed {
		return err
	}
	_, err = removeIfEmpty(base)
	return err
}

func removeIfEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", dir, err)
	}
	if len(entries) > 0 {
		return false, nil
	}
	if err := os.Remove(dir); err != nil {
		return false, fmt.Errorf("removing %s: %w", dir, err)
	}
	return true, nil
}
