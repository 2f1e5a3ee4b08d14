package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gachaplus/charcode/pkg/charcode"
)

type ColorCLI struct {
	Tokens []string `arg:"" help:"Colour tokens, e.g. 6C71A4, 0x6c71a4 or undefined"`
}

// Run prints "HEX r g b" for every valid token. Invalid tokens are reported
// together after the valid ones are printed.
func (c *ColorCLI) Run(logger *slog.Logger, stdout io.Writer) error {
	var errs []error
	for _, tok := range c.Tokens {
		col, err := charcode.ParseColor(tok)
		if err != nil {
			logger.Debug("invalid colour token", "token", tok, "error", err)
			errs = append(errs, err)
			continue
		}
		if _, err := fmt.Fprintf(stdout, "%s %d %d %d\n", col, col.R, col.G, col.B); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}
