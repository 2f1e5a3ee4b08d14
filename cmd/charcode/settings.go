package main

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"github.com/gachaplus/charcode/pkg/batch"
	"github.com/gachaplus/charcode/pkg/render"
)

// Settings holds the "charcode" section of the unified config. Every value
// can be overridden by a command line flag.
type Settings struct {
	Format       string `json:"format"`
	Template     string `json:"template"`
	TemplateFile string `json:"template_file"`
	FailFast     bool   `json:"fail_fast"`
	MaxLineBytes int    `json:"max_line_bytes"`
}

// loadSettings decodes the charcode section from the unified CUE config.
func loadSettings(unifiedConfig cue.Value) (*Settings, error) {
	section := unifiedConfig.LookupPath(cue.ParsePath("charcode"))
	if !section.Exists() {
		// Flags and built-in defaults provide everything.
		return &Settings{}, nil
	}

	var s Settings
	if err := section.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode charcode config: %w", err)
	}
	if s.MaxLineBytes < 0 {
		return nil, fmt.Errorf("charcode.max_line_bytes must not be negative, got %d", s.MaxLineBytes)
	}
	return &s, nil
}

// renderer resolves the output format and template (flag, then config, then
// fallback) and builds a Renderer.
func (s *Settings) renderer(format, template string, fallback render.Format) (*render.Renderer, error) {
	name := firstNonEmpty(format, s.Format, string(fallback))
	f, err := render.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	tmpl := firstNonEmpty(template, s.Template)
	if tmpl == "" && s.TemplateFile != "" {
		path, err := expandPath(s.TemplateFile)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read template file: %w", err)
		}
		tmpl = string(data)
	}

	return render.New(f, render.WithTemplate(tmpl))
}

// batchOptions returns processor options with failFast applied over the
// config value.
func (s *Settings) batchOptions(failFast bool) []batch.Option {
	opts := []batch.Option{batch.FailFast(failFast || s.FailFast)}
	if s.MaxLineBytes > 0 {
		opts = append(opts, batch.MaxLineBytes(s.MaxLineBytes))
	}
	return opts
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
