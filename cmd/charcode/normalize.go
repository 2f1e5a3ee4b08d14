package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gachaplus/charcode/pkg/batch"
	"github.com/gachaplus/charcode/pkg/charcode"
)

// NormalizeCLI rewrites every accepted code in canonical form. Rejected
// lines are logged and skipped.
type NormalizeCLI struct {
	Files    []string `arg:"" optional:"" help:"Input files, one code per line (default: stdin)"`
	Upgrade  bool     `help:"Emit the extended schema even for legacy codes"`
	FailFast bool     `help:"Stop at the first rejected code"`
}

func (n *NormalizeCLI) Run(logger *slog.Logger, settings *Settings, stdin io.Reader, stdout io.Writer) error {
	summary, err := processSources(context.Background(), logger, n.Files, stdin, settings.batchOptions(n.FailFast), func(res *batch.Result) error {
		if res.Err != nil {
			return nil
		}
		rec := res.Record
		if n.Upgrade {
			rec = rec.Upgrade()
		}
		_, err := fmt.Fprintln(stdout, charcode.Encode(rec))
		return err
	})
	if err != nil {
		return err
	}

	logger.Info("normalize complete", "total", summary.Total, "accepted", summary.Accepted, "rejected", summary.Rejected)
	if summary.Rejected > 0 {
		return &rejectedError{rejected: summary.Rejected, total: summary.Total}
	}
	return nil
}
