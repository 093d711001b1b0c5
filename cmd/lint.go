// Package cmd - lint command.
// Runs the normalizer over Markdown files that already exist, for notes
// converted before the normalizer existed or edited by hand since.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/docx2md/core"
	"github.com/gaurav-prasanna/docx2md/core/convert"
	"github.com/gaurav-prasanna/docx2md/core/frontmatter"
	"github.com/gaurav-prasanna/docx2md/core/normalize"
)

func newLintCmd(global *globalOptions) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "lint <files...>",
		Short: "Normalize existing Markdown files in place",
		Long: `Lint applies the Markdown normalizer to existing files. A front matter
block is left exactly as it is; only the body is normalized.

With --check nothing is written and the command exits 1 when any file
would change.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, check, global)
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Report files that would change without writing them")
	return cmd
}

func runLint(cmd *cobra.Command, args []string, check bool, global *globalOptions) error {
	out := cmd.OutOrStdout()
	normalizer := normalize.New()

	var failed, changed int
	for _, path := range args {
		fixed, report, err := lintFile(normalizer, path, check)
		if err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s: %v\n", path, err)
			continue
		}
		if !fixed {
			fmt.Fprintf(out, "✓ %s\n", path)
			continue
		}

		changed++
		verb := "fixed"
		if check {
			verb = "would fix"
		}
		fmt.Fprintf(out, "✎ %s %s: %s\n", verb, path, describe(report))
		global.logger.Debug("normalized", "file", path, "report", report)
	}

	switch {
	case failed > 0:
		return &ExitError{Code: ExitFailures, Err: errors.New("some files could not be linted")}
	case check && changed > 0:
		return &ExitError{Code: ExitFailures}
	}
	return nil
}

// lintFile normalizes one file and reports whether its content changed.
// When check is set the file is not rewritten.
func lintFile(n core.Normalizer, path string, check bool) (bool, core.NormalizeReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, core.NormalizeReport{}, err
	}
	source := convert.NormalizeLineEndings(string(data))

	_, front, body, err := frontmatter.Split(source)
	if err != nil {
		return false, core.NormalizeReport{}, err
	}

	normalized, report := n.Normalize(body)
	result := front + normalized
	if result == string(data) {
		return false, report, nil
	}
	if check {
		return true, report, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, report, err
	}
	if err := os.WriteFile(path, []byte(result), info.Mode().Perm()); err != nil {
		return false, report, fmt.Errorf("writing file: %w", err)
	}
	return true, report, nil
}

// describe renders a NormalizeReport as a short summary.
func describe(r core.NormalizeReport) string {
	return fmt.Sprintf("%d blank lines added, %d removed, %d TOC links rewritten, %d stripped, %d items renumbered",
		r.BlankLinesInserted, r.BlankLinesRemoved, r.LinksRewritten, r.LinksStripped, r.ItemsRenumbered)
}
