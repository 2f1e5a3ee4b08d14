package main

import (
	"io"
	"log/slog"

	"github.com/gachaplus/charcode/pkg/charcode"
	"github.com/gachaplus/charcode/pkg/render"
)

type DefaultCLI struct {
	Format   string `help:"Output format (${formats})" short:"f"`
	Template string `help:"Mustache template for text output" short:"t"`
	Extended bool   `help:"Emit the extended schema"`
}

func (d *DefaultCLI) Run(logger *slog.Logger, settings *Settings, stdout io.Writer) error {
	r, err := settings.renderer(d.Format, d.Template, render.FormatCode)
	if err != nil {
		return err
	}

	rec := charcode.Default()
	if d.Extended {
		rec = rec.Upgrade()
	}
	logger.Debug("rendering default character", "format", r.Format(), "schema", rec.Schema())
	return r.Render(stdout, rec)
}
