// Package convert implements the Converter interface.
// Pandoc is preferred; when it is missing or fails, a pure-Go fallback
// renders the document body as HTML and converts that to Markdown.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrUnavailable is returned when a converter cannot run on this machine.
var ErrUnavailable = errors.New("converter unavailable")

// Pandoc converts documents by running the pandoc executable.
type Pandoc struct {
	// Path is an explicit pandoc executable. Empty means look it up in PATH.
	Path string
}

// NewPandoc creates a Pandoc converter.
func NewPandoc(path string) *Pandoc {
	return &Pandoc{Path: path}
}

// Name identifies the converter in progress output.
func (p *Pandoc) Name() string {
	return "pandoc"
}

// Executable resolves the pandoc binary to run.
func (p *Pandoc) Executable() (string, error) {
	if p.Path != "" {
		if _, err := os.Stat(p.Path); err != nil {
			return "", fmt.Errorf("pandoc path %s: %w", p.Path, ErrUnavailable)
		}
		return p.Path, nil
	}
	path, err := exec.LookPath("pandoc")
	if err != nil {
		return "", fmt.Errorf("pandoc not found in PATH: %w", ErrUnavailable)
	}
	return path, nil
}

// Convert runs pandoc and returns GitHub-flavoured Markdown.
// Embedded images are extracted into mediaDir.
func (p *Pandoc) Convert(ctx context.Context, docxPath string, mediaDir string) (string, error) {
	exe, err := p.Executable()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(mediaDir, 0755); err != nil {
		return "", fmt.Errorf("creating media directory: %w", err)
	}

	args := []string{
		docxPath,
		"-f", "docx",
		"-t", "gfm",
		"--wrap=auto",
		"--extract-media=" + mediaDir,
	}
	cmd := exec.CommandContext(ctx, exe, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("running pandoc: %w", err)
		}
		return "", fmt.Errorf("running pandoc: %w: %s", err, msg)
	}
	return NormalizeLineEndings(stdout.String()), nil
}

// NormalizeLineEndings converts "\r\n" and lone "\r" to "\n".
func NormalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
