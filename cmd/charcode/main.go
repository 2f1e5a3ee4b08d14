package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gachaplus/charcode/pkg/config"
	"github.com/gachaplus/charcode/pkg/render"
	"github.com/lmittmann/tint"
)

type CLI struct {
	Verbose   int      `short:"v" type:"counter" help:"Increase log verbosity (-v info, -vv debug)"`
	Config    []string `help:"Config file glob patterns, unified in order" default:"~/.config/charcode/*" sep:","`
	LogFormat string   `help:"Log output format" enum:"text,json" default:"text" name:"log-format"`

	Decode    DecodeCLI    `cmd:"" help:"Decode a character code and print it"`
	Normalize NormalizeCLI `cmd:"" help:"Print the canonical form of every code"`
	Check     CheckCLI     `cmd:"" help:"Validate character codes line by line"`
	Default   DefaultCLI   `cmd:"" help:"Print the default character"`
	Color     ColorCLI     `cmd:"" help:"Decode colour tokens"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kongOptions()...)

	logger := newLogger(os.Stderr, cli.Verbose, cli.LogFormat)

	patterns := make([]string, 0, len(cli.Config))
	for _, p := range cli.Config {
		expanded, err := expandPath(p)
		ctx.FatalIfErrorf(err)
		patterns = append(patterns, expanded)
	}
	logger.Debug("loading config", "patterns", patterns)

	unifiedConfig, err := config.LoadAndUnifyPaths(patterns)
	ctx.FatalIfErrorf(err)

	settings, err := loadSettings(unifiedConfig)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(logger, settings)
	ctx.FatalIfErrorf(err)
}

func kongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("charcode"),
		kong.Description("Decode, validate and canonicalise character codes"),
		kong.UsageOnError(),
		kong.Vars{"formats": render.FormatList()},
		kong.BindTo(os.Stdin, (*io.Reader)(nil)),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	}
}

// newLogger builds the process logger. Verbosity 0 is warn, 1 info, 2+ debug.
func newLogger(w io.Writer, verbose int, format string) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose == 1:
		level = slog.LevelInfo
	case verbose >= 2:
		level = slog.LevelDebug
	}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
