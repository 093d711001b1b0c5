// Package pipeline converts discovered documents into notes:
// properties → convert → title → normalize → render → write.
// A failing document is recorded in its Outcome and never stops a batch.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gaurav-prasanna/docx2md/core"
	"github.com/gaurav-prasanna/docx2md/core/convert"
	"github.com/gaurav-prasanna/docx2md/core/docx"
	"github.com/gaurav-prasanna/docx2md/core/frontmatter"
	"github.com/gaurav-prasanna/docx2md/core/normalize"
	"github.com/gaurav-prasanna/docx2md/core/output"
	"github.com/gaurav-prasanna/docx2md/core/render"
	"github.com/gaurav-prasanna/docx2md/discover"
)

// Options configures a Pipeline.
type Options struct {
	OutputDir         string
	PreserveStructure bool
	MediaDir          string
	Overwrite         bool

	// PandocPath is an explicit pandoc executable; empty means PATH lookup.
	PandocPath string
	// StrictGo skips Pandoc and always uses the pure-Go converter.
	StrictGo bool
	// FrontMatter heads Markdown notes with a YAML block.
	FrontMatter bool

	// Renderer selects the output format. Nil means Markdown.
	Renderer core.Renderer
	// Converters replaces the default Pandoc then Go chain when set.
	Converters []core.Converter
}

// Status is the result class of one document.
type Status int

const (
	Succeeded Status = iota
	Skipped
	Failed
)

func (s Status) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Skipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Outcome describes what happened to one document.
type Outcome struct {
	Job       discover.Job
	Status    Status
	Target    string
	Converter string
	Title     string
	Report    core.NormalizeReport
	Err       error
}

// Stats counts outcomes over a batch.
type Stats struct {
	Succeeded int
	Skipped   int
	Failed    int
}

// Add counts one outcome.
func (s *Stats) Add(o Outcome) {
	switch o.Status {
	case Succeeded:
		s.Succeeded++
	case Skipped:
		s.Skipped++
	default:
		s.Failed++
	}
}

// Total returns the number of documents counted.
func (s Stats) Total() int {
	return s.Succeeded + s.Skipped + s.Failed
}

// Pipeline wires the conversion stages together.
type Pipeline struct {
	writer     *output.Writer
	chain      *convert.Chain
	normalizer core.Normalizer
	renderer   core.Renderer
	logger     *slog.Logger
}

// New creates a Pipeline. A nil logger discards diagnostics.
func New(opts Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	converters := opts.Converters
	if len(converters) == 0 {
		if !opts.StrictGo {
			converters = append(converters, convert.NewPandoc(opts.PandocPath))
		}
		converters = append(converters, convert.NewFallback())
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.NewMarkdownRenderer(opts.FrontMatter)
	}

	return &Pipeline{
		writer:     output.New(opts.OutputDir, opts.PreserveStructure, opts.MediaDir, opts.Overwrite),
		chain:      convert.NewChain(logger, converters...),
		normalizer: normalize.New(),
		renderer:   renderer,
		logger:     logger,
	}
}

// ConvertFile converts a single document.
func (p *Pipeline) ConvertFile(ctx context.Context, job discover.Job) Outcome {
	target := p.writer.Target(job.Path, job.Root, p.renderer.Extension())
	outcome := Outcome{Job: job, Target: target}

	if p.writer.Skip(target) {
		p.logger.Debug("output exists, skipping", "file", job.Path, "target", target)
		outcome.Status = Skipped
		return outcome
	}

	meta, err := docx.ReadProperties(job.Path)
	if err != nil {
		p.logger.Warn("could not read document properties", "file", job.Path, "error", err)
	}

	mediaBase := p.writer.MediaBase(job.Path)
	defer func() {
		if err := output.CleanupMedia(mediaBase, output.Stem(job.Path)); err != nil {
			p.logger.Debug("could not clean up media directory", "dir", mediaBase, "error", err)
		}
	}()

	res, err := p.chain.Convert(ctx, job.Path, p.writer.MediaFor(job.Path))
	if err != nil {
		return failed(outcome, fmt.Errorf("converting: %w", err))
	}
	outcome.Converter = res.Converter

	resolved := frontmatter.ResolveTitle(meta, res.Markdown)
	if resolved.Title != meta.Title {
		p.logger.Debug("using content title", "file", job.Path, "title", resolved.Title, "metadata_title", meta.Title)
	}
	outcome.Title = resolved.Title

	markdown, report := p.normalizer.Normalize(res.Markdown)
	outcome.Report = report

	data, err := p.renderer.Render(markdown, resolved)
	if err != nil {
		return failed(outcome, fmt.Errorf("rendering: %w", err))
	}
	if err := p.writer.Write(target, data); err != nil {
		return failed(outcome, err)
	}

	outcome.Status = Succeeded
	return outcome
}

func failed(o Outcome, err error) Outcome {
	o.Status = Failed
	o.Err = err
	return o
}

// Run converts jobs in order, calling progress after each one.
// It stops early only when ctx is cancelled.
func (p *Pipeline) Run(ctx context.Context, jobs []discover.Job, progress func(i, n int, o Outcome)) Stats {
	var stats Stats
	for i, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		o := p.ConvertFile(ctx, job)
		stats.Add(o)
		if o.Err != nil {
			p.logger.Warn("conversion failed", "file", job.Path, "error", o.Err)
		}
		if progress != nil {
			progress(i+1, len(jobs), o)
		}
	}
	return stats
}
