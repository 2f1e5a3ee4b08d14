package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gachaplus/charcode/pkg/audit"
	"github.com/gachaplus/charcode/pkg/charcode"
	"github.com/gachaplus/charcode/pkg/render"
)

type DecodeCLI struct {
	Code     string `arg:"" optional:"" default:"-" help:"Character code, or - to read it from stdin"`
	Format   string `help:"Output format (${formats})" short:"f"`
	Template string `help:"Mustache template for text output" short:"t"`
	Upgrade  bool   `help:"Emit the extended schema even for legacy codes"`
}

func (d *DecodeCLI) Run(logger *slog.Logger, settings *Settings, stdin io.Reader, stdout io.Writer) error {
	logger.Debug("decode command called", "format", d.Format, "upgrade", d.Upgrade)

	r, err := settings.renderer(d.Format, d.Template, render.FormatText)
	if err != nil {
		return err
	}

	raw := d.Code
	if raw == stdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		raw = string(data)
	}

	rec, err := charcode.Decode(raw)
	if err != nil {
		logger.Info("decode failed", "reason", audit.Reason(err), "tokens", charcode.CountTokens(raw))
		return err
	}
	logger.Info("decoded", "name", rec.Header().Name, "schema", rec.Schema())

	if d.Upgrade {
		rec = rec.Upgrade()
	}
	return r.Render(stdout, rec)
}
