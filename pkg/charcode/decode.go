package charcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Decode parses and validates a character code.
//
// Codes shorter than CanonicalLength are padded from the reference
// template, and every code is padded with zeros up to MaxLength. Errors are
// *SizeError, *FieldParseError or *LengthViolation.
func Decode(raw string) (*Record, error) {
	tokens := tokenize(raw)

	if len(tokens) < MinLength || len(tokens) > MaxLength {
		return nil, &SizeError{Count: len(tokens)}
	}
	schema := schemaFor(len(tokens))

	fillSentinels(tokens)
	tokens = pad(tokens)

	return build(schema, tokens)
}

// CountTokens returns the number of tokens Decode sees in raw.
func CountTokens(raw string) int {
	return strings.Count(strings.TrimSpace(raw), Delimiter) + 1
}

// tokenize splits raw on Delimiter and trims every token. Empty tokens are
// kept so positions stay stable.
func tokenize(raw string) []string {
	tokens := strings.Split(strings.TrimSpace(raw), Delimiter)
	for i, t := range tokens {
		tokens[i] = strings.TrimSpace(t)
	}
	return tokens
}

func fillSentinels(tokens []string) {
	for i, t := range tokens {
		if t == "" {
			tokens[i] = Sentinel
		}
	}
}

// pad extends tokens to MaxLength: template values up to CanonicalLength,
// then zeros for the extension block.
func pad(tokens []string) []string {
	out := make([]string, len(tokens), MaxLength)
	copy(out, tokens)
	for len(out) < MaxLength {
		tok, _ := DefaultToken(len(out))
		out = append(out, tok)
	}
	return out
}

// build extracts the segments from a padded token slice.
func build(schema Schema, tokens []string) (*Record, error) {
	numbers, err := parseInts("numbers", tokens, numbersStart, numbersEnd)
	if err != nil {
		return nil, err
	}

	colors := make([]Color, 0, ColorsCount)
	for i := colorsStart; i < colorsEnd; i++ {
		c, err := ParseColor(tokens[i])
		if err != nil {
			return nil, &FieldParseError{
				Field: fmt.Sprintf("colors[%d]", i-colorsStart),
				Index: i,
				Value: tokens[i],
				Err:   err,
			}
		}
		colors = append(colors, c)
	}

	numbers2, err := parseInts("numbers2", tokens, numbers2Start, numbers2End)
	if err != nil {
		return nil, err
	}

	header := headerFromTokens(tokens[:HeaderLength])
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	return &Record{
		schema:   schema,
		header:   header,
		numbers:  numbers,
		colors:   colors,
		numbers2: numbers2,
	}, nil
}

func parseInts(segment string, tokens []string, start, end int) ([]int32, error) {
	out := make([]int32, 0, end-start)
	for i := start; i < end; i++ {
		n, err := strconv.ParseInt(tokens[i], 10, 32)
		if err != nil {
			return nil, &FieldParseError{
				Field: fmt.Sprintf("%s[%d]", segment, i-start),
				Index: i,
				Value: tokens[i],
				Err:   err,
			}
		}
		out = append(out, int32(n))
	}
	return out, nil
}
