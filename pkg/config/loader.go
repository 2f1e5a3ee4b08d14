// Package config provides unified configuration loading for charcode.
// It supports YAML, JSON, TOML and CUE files using CUE as the underlying
// representation, so several files can be unified into one value.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/encoding/yaml"
	"github.com/pelletier/go-toml/v2"
)

// LoadValueFromReader loads configuration from an io.Reader and returns a CUE value.
// This parses the content as YAML (which is a superset of JSON).
// For .cue files with imports, use LoadValue instead.
func LoadValueFromReader(r io.Reader) (cue.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}
	return buildYAML(cuecontext.New(), data)
}

// LoadValue loads configuration from a file and returns a CUE value.
//
// For .cue files and directories: uses load.Instances, so CUE packages with
// imports work. For .yaml/.yml/.json/.toml files: parses the data directly.
// Unknown extensions are read as YAML.
func LoadValue(path string) (cue.Value, error) {
	return loadValue(cuecontext.New(), path)
}

// LoadAndUnifyPaths expands each glob pattern, loads every matching file and
// unifies them into a single value. Patterns that match nothing are skipped;
// if no file is found the result is an empty struct. Files that disagree on a
// concrete value produce an error.
func LoadAndUnifyPaths(patterns []string) (cue.Value, error) {
	ctx := cuecontext.New()
	unified := ctx.CompileString("{}")

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return cue.Value{}, fmt.Errorf("invalid config pattern %q: %w", pattern, err)
		}
		for _, path := range matches {
			val, err := loadValue(ctx, path)
			if err != nil {
				return cue.Value{}, fmt.Errorf("%s: %w", path, err)
			}
			unified = unified.Unify(val)
		}
	}

	if err := unified.Validate(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to unify config: %w", err)
	}
	return unified, nil
}

func loadValue(ctx *cue.Context, path string) (cue.Value, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to stat path: %w", err)
	}

	if fileInfo.IsDir() || strings.HasSuffix(strings.ToLower(path), ".cue") {
		return loadInstance(ctx, path, fileInfo.IsDir())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		val := ctx.CompileBytes(data)
		if err := val.Err(); err != nil {
			return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
		}
		return val, nil
	case ".toml":
		return buildTOML(ctx, data)
	default:
		return buildYAML(ctx, data)
	}
}

func loadInstance(ctx *cue.Context, path string, isDir bool) (cue.Value, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to resolve path: %w", err)
	}

	cfg := &load.Config{
		Dir:       filepath.Dir(absPath),
		DataFiles: true,
	}
	args := []string{absPath}
	if isDir {
		cfg.Dir = absPath
		args = []string{"."}
	}

	instances := load.Instances(args, cfg)
	if len(instances) == 0 {
		return cue.Value{}, fmt.Errorf("no instances loaded from %s", path)
	}
	inst := instances[0]
	if inst.Err != nil {
		return cue.Value{}, fmt.Errorf("failed to load config: %w", inst.Err)
	}

	val := ctx.BuildInstance(inst)
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}

func buildYAML(ctx *cue.Context, data []byte) (cue.Value, error) {
	file, err := yaml.Extract("", data)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	val := ctx.BuildFile(file)
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}

// buildTOML decodes TOML into plain Go values and encodes those as CUE.
func buildTOML(ctx *cue.Context, data []byte) (cue.Value, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return cue.Value{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	val := ctx.Encode(doc)
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}
