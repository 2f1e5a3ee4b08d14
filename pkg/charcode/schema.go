package charcode

import "fmt"

const (
	// Delimiter separates tokens in a character code.
	Delimiter = "|"

	// Sentinel replaces empty tokens so every position holds a value.
	Sentinel = "-"
)

// Token counts accepted by Decode.
const (
	// MinLength is the smallest token count that still carries every
	// header field and the first numeric segment.
	MinLength = 445

	// CanonicalLength is the token count of a character code without the
	// extension block. It is also the length of the reference template.
	CanonicalLength = 478

	// extensionLength is the number of tokens appended by newer clients.
	extensionLength = 29

	// MaxLength is the largest token count accepted.
	MaxLength = CanonicalLength + extensionLength
)

// Segment offsets. Each segment spans [start, end).
const (
	HeaderLength = 10

	numbersStart  = HeaderLength
	numbersEnd    = 279
	colorsStart   = numbersEnd
	colorsEnd     = 447
	numbers2Start = colorsEnd
	numbers2End   = MaxLength

	// NumbersCount is the size of the first numeric segment.
	NumbersCount = numbersEnd - numbersStart
	// ColorsCount is the size of the color segment.
	ColorsCount = colorsEnd - colorsStart
	// Numbers2Count is the size of the second numeric segment once padded.
	Numbers2Count = numbers2End - numbers2Start
)

// Schema identifies which client generation produced a character code.
type Schema int

const (
	// SchemaLegacy codes stop at CanonicalLength tokens.
	SchemaLegacy Schema = iota
	// SchemaExtended codes carry the extension block up to MaxLength.
	SchemaExtended
)

func (s Schema) String() string {
	switch s {
	case SchemaLegacy:
		return "legacy"
	case SchemaExtended:
		return "extended"
	default:
		return fmt.Sprintf("Schema(%d)", int(s))
	}
}

// Length returns the number of tokens Encode emits for the schema.
func (s Schema) Length() int {
	if s == SchemaExtended {
		return MaxLength
	}
	return CanonicalLength
}

// schemaFor picks the schema from the raw token count.
func schemaFor(count int) Schema {
	if count > CanonicalLength {
		return SchemaExtended
	}
	return SchemaLegacy
}

// HeaderField names one of the ten free-text header positions.
type HeaderField int

const (
	FieldName HeaderField = iota
	FieldBirthday
	FieldAge
	FieldProfile
	FieldCreator
	FieldFavoriteColor
	FieldFavoriteFood
	FieldLocation
	FieldPersonality
	FieldOccupation
)

var headerFields = [HeaderLength]struct {
	name string
	max  int
}{
	FieldName:          {"name", 24},
	FieldBirthday:      {"birthday", 12},
	FieldAge:           {"age", 5},
	FieldProfile:       {"profile", 300},
	FieldCreator:       {"creator", 24},
	FieldFavoriteColor: {"favorite_color", 24},
	FieldFavoriteFood:  {"favorite_food", 24},
	FieldLocation:      {"location", 24},
	FieldPersonality:   {"personality", 24},
	FieldOccupation:    {"occupation", 24},
}

func (f HeaderField) String() string {
	if f < 0 || int(f) >= HeaderLength {
		return fmt.Sprintf("HeaderField(%d)", int(f))
	}
	return headerFields[f].name
}

// MaxLen returns the maximum length of the field in bytes.
func (f HeaderField) MaxLen() int {
	if f < 0 || int(f) >= HeaderLength {
		return 0
	}
	return headerFields[f].max
}
