// Package cmd - convert command.
// Orchestrates a batch: discover → pipeline (convert → normalize → render →
// write) → summary. The exit code reflects the batch: 2 when nothing could
// be converted, 1 when any document failed.
package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/docx2md/core"
	"github.com/gaurav-prasanna/docx2md/core/output"
	"github.com/gaurav-prasanna/docx2md/core/pipeline"
	"github.com/gaurav-prasanna/docx2md/core/render"
	"github.com/gaurav-prasanna/docx2md/discover"
)

type convertOptions struct {
	outputDir           string
	recursive           bool
	noPreserveStructure bool
	overwrite           bool
	mediaDir            string
	pandocPath          string
	strictGo            bool
	noFrontMatter       bool
	format              *enumValue
}

func newConvertCmd(global *globalOptions) *cobra.Command {
	opts := &convertOptions{format: newEnumValue("markdown", "markdown", "json", "pdf")}

	cmd := &cobra.Command{
		Use:   "convert <inputs...>",
		Short: "Convert .docx files and directories to Markdown",
		Long: `Convert takes any mix of .docx files and directories. Directories are
scanned for .docx files (recursively with -r). Word lock files, hidden files
and .doc/.docm files are skipped.

Examples:
  docx2md convert document.docx
  docx2md convert document.docx -o notes/
  docx2md convert input_folder/ -r -o notes/
  docx2md convert document.docx --strict-go
  docx2md convert document.docx --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, opts, global)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.outputDir, "output-dir", "o", "", "Output directory (default: next to each input)")
	f.BoolVarP(&opts.recursive, "recursive", "r", false, "Search directories recursively")
	f.BoolVar(&opts.noPreserveStructure, "no-preserve-structure", false, "Write all outputs flat into the output directory")
	f.BoolVar(&opts.overwrite, "overwrite", false, "Overwrite existing output files")
	f.StringVar(&opts.mediaDir, "media-dir", output.DefaultMediaDir, "Media directory name")
	f.StringVar(&opts.pandocPath, "pandoc-path", "", "Path to the pandoc executable")
	f.BoolVar(&opts.strictGo, "strict-go", false, "Skip Pandoc and use the built-in converter only")
	f.BoolVar(&opts.noFrontMatter, "no-front-matter", false, "Disable YAML front matter")
	f.Var(opts.format, "format", "Output format: markdown, json or pdf")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string, opts *convertOptions, global *globalOptions) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	renderer, err := selectRenderer(opts.format.String(), !opts.noFrontMatter)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Scanning for .docx files...")
	found, err := discover.Discover(args, opts.recursive)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	for _, s := range found.Skipped {
		fmt.Fprintf(out, "SKIP: %s (%s)\n", filepath.Base(s.Path), s.Reason)
	}
	for _, m := range found.Missing {
		fmt.Fprintf(errOut, "ERROR: %s (path not found)\n", m)
	}
	if n := len(found.Skipped); n > 0 {
		fmt.Fprintf(out, "Skipped %d non-DOCX or temporary file(s)\n", n)
	}

	if len(found.Jobs) == 0 {
		fmt.Fprintln(errOut, "✗ No valid .docx files found")
		return &ExitError{Code: ExitNoInput}
	}
	fmt.Fprintf(out, "✓ Found %d valid .docx file(s) to convert\n\n", len(found.Jobs))

	p := pipeline.New(pipeline.Options{
		OutputDir:         opts.outputDir,
		PreserveStructure: !opts.noPreserveStructure,
		MediaDir:          opts.mediaDir,
		Overwrite:         opts.overwrite,
		PandocPath:        opts.pandocPath,
		StrictGo:          opts.strictGo,
		FrontMatter:       !opts.noFrontMatter,
		Renderer:          renderer,
	}, global.logger)

	stats := p.Run(cmd.Context(), found.Jobs, func(i, n int, o pipeline.Outcome) {
		name := filepath.Base(o.Job.Path)
		switch o.Status {
		case pipeline.Succeeded:
			fmt.Fprintf(out, "[%d/%d] ✓ %s → %s (%s)\n", i, n, name, o.Target, o.Converter)
		case pipeline.Skipped:
			fmt.Fprintf(out, "[%d/%d] ⊘ %s (output exists: %s)\n", i, n, name, o.Target)
		default:
			fmt.Fprintf(errOut, "[%d/%d] ✗ %s: %v\n", i, n, name, o.Err)
		}
	})

	printSummary(out, stats)

	if err := cmd.Context().Err(); err != nil {
		return &ExitError{Code: ExitFailures, Err: err}
	}
	if stats.Failed > 0 {
		return &ExitError{Code: ExitFailures}
	}
	return nil
}

// selectRenderer creates the Renderer for the --format flag.
func selectRenderer(format string, frontMatter bool) (core.Renderer, error) {
	switch format {
	case "markdown":
		return render.NewMarkdownRenderer(frontMatter), nil
	case "json":
		return render.NewJSONRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// printSummary writes the status/count/percentage table for a batch.
func printSummary(w io.Writer, stats pipeline.Stats) {
	total := stats.Total()
	if total == 0 {
		return
	}

	fmt.Fprintln(w, "\nConversion Summary")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Status\tCount\tPercentage")
	row := func(label string, n int) {
		if n > 0 {
			fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", label, n, float64(n)/float64(total)*100)
		}
	}
	row("✓ Succeeded", stats.Succeeded)
	row("⊘ Skipped", stats.Skipped)
	row("✗ Failed", stats.Failed)
	fmt.Fprintf(tw, "Total\t%d\t100.0%%\n", total)
	tw.Flush()
}
