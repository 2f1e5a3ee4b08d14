package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/gachaplus/charcode/pkg/audit"
	"github.com/gachaplus/charcode/pkg/batch"
)

type CheckCLI struct {
	Files    []string `arg:"" optional:"" help:"Input files, one code per line (default: stdin)"`
	FailFast bool     `help:"Stop at the first rejected code"`
	Report   string   `help:"Write a JSON-lines audit report to this file" type:"path"`
	Quiet    bool     `help:"Only print rejected codes and the summary" short:"q"`
}

func (c *CheckCLI) Run(logger *slog.Logger, settings *Settings, stdin io.Reader, stdout io.Writer) error {
	opts := settings.batchOptions(c.FailFast)

	if c.Report != "" {
		f, err := os.Create(c.Report)
		if err != nil {
			return fmt.Errorf("failed to create report: %w", err)
		}
		defer f.Close()
		opts = append(opts, batch.WithAuditLogger(audit.NewMultiLogger(
			audit.NewSlogLogger(logger),
			audit.NewJSONLogger(f),
		)))
		logger.Info("writing audit report", "path", c.Report)
	}

	summary, err := processSources(context.Background(), logger, c.Files, stdin, opts, func(res *batch.Result) error {
		return c.printResult(stdout, res)
	})
	if err != nil {
		return err
	}

	if err := printSummary(stdout, summary); err != nil {
		return err
	}
	if summary.Rejected > 0 {
		return &rejectedError{rejected: summary.Rejected, total: summary.Total}
	}
	return nil
}

func (c *CheckCLI) printResult(w io.Writer, res *batch.Result) error {
	if res.Err != nil {
		_, err := fmt.Fprintf(w, "%s:%d: rejected (%s): %v\n", res.Source, res.Line, audit.Reason(res.Err), res.Err)
		return err
	}
	if c.Quiet {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s:%d: ok %s %q\n", res.Source, res.Line, res.Record.Schema(), res.Record.Header().Name)
	return err
}

func printSummary(w io.Writer, s batch.Summary) error {
	if _, err := fmt.Fprintf(w, "checked %d codes: %d accepted, %d rejected\n", s.Total, s.Accepted, s.Rejected); err != nil {
		return err
	}
	reasons := make([]string, 0, len(s.ByReason))
	for reason := range s.ByReason {
		reasons = append(reasons, reason)
	}
	slices.Sort(reasons)
	for _, reason := range reasons {
		if _, err := fmt.Fprintf(w, "  %s: %d\n", reason, s.ByReason[reason]); err != nil {
			return err
		}
	}
	return nil
}
