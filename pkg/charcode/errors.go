package charcode

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrWrongSize indicates a token count outside [MinLength, MaxLength].
	ErrWrongSize = errors.New("charcode: wrong size")

	// ErrFieldParse indicates a numeric or color token could not be parsed.
	ErrFieldParse = errors.New("charcode: field parse error")

	// ErrLengthViolation indicates a header field exceeds its bound.
	ErrLengthViolation = errors.New("charcode: field too long")

	// ErrInvalidColor indicates a malformed color token.
	ErrInvalidColor = errors.New("charcode: invalid color")
)

// SizeError reports the token count of a rejected character code.
type SizeError struct {
	Count int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("charcode: wrong size: %d tokens, want %d..%d", e.Count, MinLength, MaxLength)
}

func (e *SizeError) Unwrap() error {
	return ErrWrongSize
}

// FieldParseError reports a numeric or color token that failed to parse.
type FieldParseError struct {
	Field string // Segment and offset, e.g. "numbers[3]"
	Index int    // Token position in the character code
	Value string // Raw token
	Err   error  // Underlying parse error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("charcode: invalid %s at token %d: %q: %v", e.Field, e.Index, e.Value, e.Err)
}

// Unwrap exposes both ErrFieldParse and the underlying cause.
func (e *FieldParseError) Unwrap() []error {
	return []error{ErrFieldParse, e.Err}
}

// LengthViolation reports a header field longer than its bound.
type LengthViolation struct {
	Field  HeaderField
	Max    int
	Length int
}

func (e *LengthViolation) Error() string {
	return fmt.Sprintf("charcode: %s is %d bytes, max %d", e.Field, e.Length, e.Max)
}

func (e *LengthViolation) Unwrap() error {
	return ErrLengthViolation
}

// ColorError reports why a color token was rejected.
type ColorError struct {
	Value  string
	Reason string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("charcode: invalid color %q: %s", e.Value, e.Reason)
}

func (e *ColorError) Unwrap() error {
	return ErrInvalidColor
}
