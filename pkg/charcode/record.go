package charcode

import "slices"

// Header holds the free-text fields of a character, in wire order.
type Header struct {
	Name          string `json:"name" yaml:"name"`
	Birthday      string `json:"birthday" yaml:"birthday"`
	Age           string `json:"age" yaml:"age"`
	Profile       string `json:"profile" yaml:"profile"`
	Creator       string `json:"creator" yaml:"creator"`
	FavoriteColor string `json:"favorite_color" yaml:"favorite_color"`
	FavoriteFood  string `json:"favorite_food" yaml:"favorite_food"`
	Location      string `json:"location" yaml:"location"`
	Personality   string `json:"personality" yaml:"personality"`
	Occupation    string `json:"occupation" yaml:"occupation"`
}

func headerFromTokens(t []string) Header {
	return Header{
		Name:          t[FieldName],
		Birthday:      t[FieldBirthday],
		Age:           t[FieldAge],
		Profile:       t[FieldProfile],
		Creator:       t[FieldCreator],
		FavoriteColor: t[FieldFavoriteColor],
		FavoriteFood:  t[FieldFavoriteFood],
		Location:      t[FieldLocation],
		Personality:   t[FieldPersonality],
		Occupation:    t[FieldOccupation],
	}
}

// Field returns the value of the given header field, or "" for an unknown
// field.
func (h Header) Field(f HeaderField) string {
	if f < 0 || int(f) >= HeaderLength {
		return ""
	}
	return h.values()[f]
}

func (h Header) values() [HeaderLength]string {
	return [HeaderLength]string{
		h.Name,
		h.Birthday,
		h.Age,
		h.Profile,
		h.Creator,
		h.FavoriteColor,
		h.FavoriteFood,
		h.Location,
		h.Personality,
		h.Occupation,
	}
}

// Record is a decoded character code. Records are only produced by Decode
// and friends, and never change afterwards: accessors return copies.
type Record struct {
	schema   Schema
	header   Header
	numbers  []int32
	colors   []Color
	numbers2 []int32
}

// Schema returns the client generation the record was decoded from.
func (r *Record) Schema() Schema {
	return r.schema
}

// Header returns the free-text fields.
func (r *Record) Header() Header {
	return r.header
}

// Numbers returns the appearance values at token positions 10..278.
func (r *Record) Numbers() []int32 {
	return slices.Clone(r.numbers)
}

// Colors returns the palette at token positions 279..446.
func (r *Record) Colors() []Color {
	return slices.Clone(r.colors)
}

// Numbers2 returns the values from token position 447 onward, including the
// zero-filled extension block.
func (r *Record) Numbers2() []int32 {
	return slices.Clone(r.numbers2)
}

// Extension returns only the extension block, token positions 478..506.
// It returns nil for a record that was not produced by Decode.
func (r *Record) Extension() []int32 {
	if len(r.numbers2) < Numbers2Count {
		return nil
	}
	return slices.Clone(r.numbers2[CanonicalLength-numbers2Start:])
}

// Upgrade returns a copy of r that encodes with the extension block.
func (r *Record) Upgrade() *Record {
	return &Record{
		schema:   SchemaExtended,
		header:   r.header,
		numbers:  slices.Clone(r.numbers),
		colors:   slices.Clone(r.colors),
		numbers2: slices.Clone(r.numbers2),
	}
}

// String returns the canonical character code.
func (r *Record) String() string {
	return Encode(r)
}
