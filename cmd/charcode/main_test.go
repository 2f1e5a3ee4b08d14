package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/gachaplus/charcode/pkg/charcode"
	"github.com/gachaplus/charcode/pkg/config"
	"github.com/gachaplus/charcode/pkg/render"
	"github.com/lithammer/dedent"
	"github.com/lmittmann/tint"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func testLogger(t *testing.T) *slog.Logger {
	return slog.New(tint.NewHandler(t.Output(), &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05",
	}))
}

func extendedCode() string {
	return charcode.DefaultCode() + strings.Repeat("|0", charcode.MaxLength-charcode.CanonicalLength)
}

func TestDecode_Text(t *testing.T) {
	var out bytes.Buffer
	cmd := &DecodeCLI{Code: charcode.DefaultCode()}

	err := cmd.Run(testLogger(t), &Settings{}, strings.NewReader(""), &out)
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out.String(), "placeholder [legacy, 478 tokens]"))
	assert.Assert(t, is.Contains(out.String(), "profile:        Coming soon!"))
}

func TestDecode_Stdin(t *testing.T) {
	var out bytes.Buffer
	cmd := &DecodeCLI{Code: "-", Format: "code"}

	err := cmd.Run(testLogger(t), &Settings{}, strings.NewReader(charcode.DefaultCode()+"\n"), &out)
	assert.NilError(t, err)
	assert.Equal(t, charcode.DefaultCode()+"\n", out.String())
}

func TestDecode_Upgrade(t *testing.T) {
	var out bytes.Buffer
	cmd := &DecodeCLI{Code: charcode.DefaultCode(), Format: "code", Upgrade: true}

	err := cmd.Run(testLogger(t), &Settings{}, strings.NewReader(""), &out)
	assert.NilError(t, err)
	assert.Equal(t, extendedCode()+"\n", out.String())
}

func TestDecode_FormatFromSettings(t *testing.T) {
	var out bytes.Buffer
	cmd := &DecodeCLI{Code: charcode.DefaultCode()}

	err := cmd.Run(testLogger(t), &Settings{Format: "json"}, strings.NewReader(""), &out)
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out.String(), `"schema": "legacy"`))
}

func TestDecode_FlagOverridesSettings(t *testing.T) {
	var out bytes.Buffer
	cmd := &DecodeCLI{Code: charcode.DefaultCode(), Template: "{{{name}}}|{{schema}}"}

	err := cmd.Run(testLogger(t), &Settings{Format: "text", Template: "ignored"}, strings.NewReader(""), &out)
	assert.NilError(t, err)
	assert.Equal(t, "placeholder|legacy", out.String())
}

func TestDecode_Rejected(t *testing.T) {
	var out bytes.Buffer
	cmd := &DecodeCLI{Code: "a|b|c"}

	err := cmd.Run(testLogger(t), &Settings{}, strings.NewReader(""), &out)
	assert.Assert(t, errors.Is(err, charcode.ErrWrongSize))
	assert.Equal(t, "", out.String())
}

func TestDecode_UnknownFormat(t *testing.T) {
	cmd := &DecodeCLI{Code: charcode.DefaultCode(), Format: "xml"}

	err := cmd.Run(testLogger(t), &Settings{}, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown format")
}

func TestDefault(t *testing.T) {
	var out bytes.Buffer
	err := (&DefaultCLI{}).Run(testLogger(t), &Settings{}, &out)
	assert.NilError(t, err)
	assert.Equal(t, charcode.DefaultCode()+"\n", out.String())

	out.Reset()
	err = (&DefaultCLI{Extended: true}).Run(testLogger(t), &Settings{}, &out)
	assert.NilError(t, err)
	assert.Equal(t, extendedCode()+"\n", out.String())
}

func TestDefault_TemplateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.mustache")
	assert.NilError(t, os.WriteFile(path, []byte("{{{name}}}: {{{profile}}}"), 0644))

	var out bytes.Buffer
	err := (&DefaultCLI{Format: "text"}).Run(testLogger(t), &Settings{TemplateFile: path}, &out)
	assert.NilError(t, err)
	assert.Equal(t, "placeholder: Coming soon!", out.String())
}

func TestColor(t *testing.T) {
	var out bytes.Buffer
	cmd := &ColorCLI{Tokens: []string{"6C71A4", "0x0a0b0c", "undefined", "12345", "GG0000"}}

	err := cmd.Run(testLogger(t), &out)
	assert.Assert(t, errors.Is(err, charcode.ErrInvalidColor))
	assert.ErrorContains(t, err, "invalid hex length")
	assert.ErrorContains(t, err, "invalid value for red")

	expected := dedent.Dedent(`
		6C71A4 108 113 164
		0A0B0C 10 11 12
		FFFFFF 255 255 255
	`)
	assert.Equal(t, strings.TrimPrefix(expected, "\n"), out.String())
}

func TestLoadSettings(t *testing.T) {
	val, err := config.LoadValueFromReader(strings.NewReader(dedent.Dedent(`
		charcode:
		  format: yaml
		  fail_fast: true
		  max_line_bytes: 2048
	`)))
	assert.NilError(t, err)

	s, err := loadSettings(val)
	assert.NilError(t, err)
	assert.Equal(t, "yaml", s.Format)
	assert.Assert(t, s.FailFast)
	assert.Equal(t, 2048, s.MaxLineBytes)
}

func TestLoadSettings_MissingSection(t *testing.T) {
	val, err := config.LoadValueFromReader(strings.NewReader("other: true\n"))
	assert.NilError(t, err)

	s, err := loadSettings(val)
	assert.NilError(t, err)
	assert.DeepEqual(t, &Settings{}, s)
}

func TestLoadSettings_Negative(t *testing.T) {
	val, err := config.LoadValueFromReader(strings.NewReader("charcode: {max_line_bytes: -1}\n"))
	assert.NilError(t, err)

	_, err = loadSettings(val)
	assert.ErrorContains(t, err, "max_line_bytes")
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, 1, "json")

	logger.Debug("hidden")
	logger.Info("shown", "k", "v")

	assert.Assert(t, !strings.Contains(buf.String(), "hidden"))
	assert.Assert(t, is.Contains(buf.String(), `"msg":"shown"`))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	assert.NilError(t, err)

	got, err := expandPath("~/.config/charcode/*")
	assert.NilError(t, err)
	assert.Equal(t, filepath.Join(home, ".config/charcode/*"), got)

	got, err = expandPath("/etc/charcode.yaml")
	assert.NilError(t, err)
	assert.Equal(t, "/etc/charcode.yaml", got)
}

func TestKongOptions_FormatHelp(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kongOptions()...)
	assert.NilError(t, err)

	for _, name := range []string{"decode", "default"} {
		var help string
		for _, child := range parser.Model.Children {
			if child.Name != name {
				continue
			}
			for _, flag := range child.Flags {
				if flag.Name == "format" {
					help = flag.Help
				}
			}
		}
		assert.Equal(t, "Output format ("+render.FormatList()+")", help, name)
	}

	_, err = parser.Parse([]string{"default", "--format", "yaml", "--config", "/nonexistent/*"})
	assert.NilError(t, err)
	assert.Equal(t, "yaml", cli.Default.Format)
}
