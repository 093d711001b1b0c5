// Package discover - file filtering rules.
// Provides helpers to decide which files are convertible .docx documents
// and why the others are skipped.
package discover

import (
	"path/filepath"
	"strings"
)

// Skip reasons reported for files that are not converted.
const (
	ReasonWordTemp    = "Word temporary/lock file"
	ReasonLibreLock   = "LibreOffice lock file"
	ReasonHidden      = "hidden file"
	ReasonUnsupported = "unsupported format (.doc/.docm)"
	ReasonNotDocx     = "not a .docx file"
)

// unsupportedExtensions are Word formats we recognise but cannot convert.
var unsupportedExtensions = map[string]bool{
	".doc":  true,
	".docm": true,
}

// IsTemporaryFile checks if a file is a Word temporary file, an office lock
// file or a hidden file. Only the base name is inspected.
func IsTemporaryFile(path string) bool {
	name := filepath.Base(path)
	switch {
	case strings.HasPrefix(name, "~$"):
		return true
	case strings.HasPrefix(name, ".~lock."):
		return true
	case strings.HasPrefix(name, ".") && name != ".":
		return true
	}
	return false
}

// SkipReason returns why a file should be skipped, or "" if it should be converted.
func SkipReason(path string) string {
	name := filepath.Base(path)
	switch {
	case strings.HasPrefix(name, "~$"):
		return ReasonWordTemp
	case strings.HasPrefix(name, ".~lock."):
		return ReasonLibreLock
	case strings.HasPrefix(name, ".") && name != ".":
		return ReasonHidden
	}

	ext := strings.ToLower(filepath.Ext(name))
	if unsupportedExtensions[ext] {
		return ReasonUnsupported
	}
	if ext != ".docx" {
		return ReasonNotDocx
	}
	return ""
}
