package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gachaplus/charcode/pkg/audit"
	"github.com/gachaplus/charcode/pkg/batch"
)

const stdinName = "-"

// forEachSource opens each named file in turn (stdin for "-" or when files
// is empty) and hands it to fn.
func forEachSource(files []string, stdin io.Reader, fn func(name string, r io.Reader) error) error {
	if len(files) == 0 {
		files = []string{stdinName}
	}
	for _, name := range files {
		if name == stdinName {
			if err := fn(name, stdin); err != nil {
				return err
			}
			continue
		}
		if err := processFile(name, fn); err != nil {
			return err
		}
	}
	return nil
}

func processFile(name string, fn func(name string, r io.Reader) error) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return fn(name, f)
}

// processSources runs one batch per source and merges the summaries.
func processSources(ctx context.Context, logger *slog.Logger, files []string, stdin io.Reader, opts []batch.Option, fn func(*batch.Result) error) (batch.Summary, error) {
	opts = append([]batch.Option{batch.WithAuditLogger(audit.NewSlogLogger(logger))}, opts...)
	p := batch.NewProcessor(opts...)

	var total batch.Summary
	err := forEachSource(files, stdin, func(name string, r io.Reader) error {
		logger.Debug("processing source", "source", name)
		summary, err := p.Process(ctx, name, r, fn)
		total.Merge(summary)
		return err
	})
	return total, err
}

// rejectedError reports that a batch contained rejected codes.
type rejectedError struct {
	rejected int
	total    int
}

func (e *rejectedError) Error() string {
	return fmt.Sprintf("%d of %d codes rejected", e.rejected, e.total)
}
