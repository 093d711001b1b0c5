// Package convert - converter fallback chain.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gaurav-prasanna/docx2md/core"
)

// Chain tries converters in order and returns the first successful result.
type Chain struct {
	converters []core.Converter
	logger     *slog.Logger
}

// NewChain creates a Chain. A nil logger discards diagnostics.
func NewChain(logger *slog.Logger, converters ...core.Converter) *Chain {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Chain{converters: converters, logger: logger}
}

// Result is the Markdown produced by the chain and the converter that produced it.
type Result struct {
	Markdown  string
	Converter string
}

// Convert runs each converter until one succeeds.
func (c *Chain) Convert(ctx context.Context, docxPath string, mediaDir string) (Result, error) {
	if len(c.converters) == 0 {
		return Result{}, errors.New("no converters configured")
	}

	var errs []error
	for _, conv := range c.converters {
		markdown, err := conv.Convert(ctx, docxPath, mediaDir)
		if err == nil {
			return Result{Markdown: markdown, Converter: conv.Name()}, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}

		if errors.Is(err, ErrUnavailable) {
			c.logger.Debug("converter unavailable", "converter", conv.Name(), "error", err)
		} else {
			c.logger.Warn("converter failed", "converter", conv.Name(), "file", docxPath, "error", err)
		}
		errs = append(errs, fmt.Errorf("%s: %w", conv.Name(), err))
	}
	return Result{}, errors.Join(errs...)
}
