// Package render formats decoded character codes for display.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cbroglie/mustache"
	"github.com/gachaplus/charcode/pkg/charcode"
	"gopkg.in/yaml.v3"
)

// Format selects the output representation of a record.
type Format string

const (
	FormatCode Format = "code"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatCode, FormatJSON, FormatYAML, FormatText}

// FormatList returns the supported format names joined by ", ".
func FormatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", s, FormatList())
}

// DefaultTemplate is the mustache template used by FormatText.
const DefaultTemplate = `{{{name}}} [{{schema}}, {{tokens}} tokens]
  birthday:       {{{birthday}}}
  age:            {{{age}}}
  creator:        {{{creator}}}
  favorite color: {{{favorite_color}}}
  favorite food:  {{{favorite_food}}}
  location:       {{{location}}}
  personality:    {{{personality}}}
  occupation:     {{{occupation}}}
  profile:        {{{profile}}}
  palette:        {{#palette}}{{hex}} {{/palette}}
`

// paletteSize is how many leading colors the text view lists.
const paletteSize = 8

// Renderer writes records in one format.
type Renderer struct {
	format Format
	tmpl   *mustache.Template
}

// Option configures a Renderer.
type Option func(*options)

type options struct {
	template string
}

// WithTemplate overrides DefaultTemplate for FormatText. Variables use
// mustache syntax; {{{var}}} disables HTML escaping.
func WithTemplate(t string) Option {
	return func(o *options) {
		if t != "" {
			o.template = t
		}
	}
}

// New creates a Renderer. The text template is parsed up front so a bad
// template fails before any record is rendered.
func New(format Format, opts ...Option) (*Renderer, error) {
	o := &options{template: DefaultTemplate}
	for _, opt := range opts {
		opt(o)
	}

	r := &Renderer{format: format}
	switch format {
	case FormatCode, FormatJSON, FormatYAML:
	case FormatText:
		tmpl, err := mustache.ParseString(o.template)
		if err != nil {
			return nil, fmt.Errorf("invalid text template: %w", err)
		}
		r.tmpl = tmpl
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return r, nil
}

// Format returns the renderer's output format.
func (r *Renderer) Format() Format {
	return r.format
}

// Render writes rec to w. Text output is exactly what the template
// produces; the other formats end with a newline.
func (r *Renderer) Render(w io.Writer, rec *charcode.Record) error {
	switch r.format {
	case FormatCode:
		_, err := fmt.Fprintln(w, charcode.Encode(rec))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(NewView(rec))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewView(rec)); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return r.tmpl.FRender(w, templateContext(rec))
	}
	return fmt.Errorf("unknown format %q", r.format)
}

// View is the structured form of a record used by the JSON and YAML formats.
type View struct {
	Schema    string          `json:"schema" yaml:"schema"`
	Header    charcode.Header `json:"header" yaml:"header"`
	Numbers   []int32         `json:"numbers" yaml:"numbers,flow"`
	Colors    []string        `json:"colors" yaml:"colors,flow"`
	Numbers2  []int32         `json:"numbers2" yaml:"numbers2,flow"`
	Canonical string          `json:"canonical" yaml:"canonical"`
}

// NewView builds the structured form of rec.
func NewView(rec *charcode.Record) View {
	colors := rec.Colors()
	hex := make([]string, len(colors))
	for i, c := range colors {
		hex[i] = c.String()
	}

	// Only the values the canonical code carries for this schema.
	n2 := rec.Numbers2()
	n2 = n2[:rec.Schema().Length()-charcode.HeaderLength-charcode.NumbersCount-charcode.ColorsCount]

	return View{
		Schema:    rec.Schema().String(),
		Header:    rec.Header(),
		Numbers:   rec.Numbers(),
		Colors:    hex,
		Numbers2:  n2,
		Canonical: charcode.Encode(rec),
	}
}

func templateContext(rec *charcode.Record) map[string]any {
	h := rec.Header()
	colors := rec.Colors()
	palette := make([]map[string]string, 0, paletteSize)
	for _, c := range colors[:min(paletteSize, len(colors))] {
		palette = append(palette, map[string]string{"hex": c.String()})
	}

	return map[string]any{
		"schema":         rec.Schema().String(),
		"tokens":         rec.Schema().Length(),
		"name":           h.Name,
		"birthday":       h.Birthday,
		"age":            h.Age,
		"profile":        h.Profile,
		"creator":        h.Creator,
		"favorite_color": h.FavoriteColor,
		"favorite_food":  h.FavoriteFood,
		"location":       h.Location,
		"personality":    h.Personality,
		"occupation":     h.Occupation,
		"palette":        palette,
		"numbers":        rec.Numbers(),
		"numbers2":       rec.Numbers2(),
		"canonical":      charcode.Encode(rec),
	}
}
