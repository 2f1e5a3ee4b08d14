package charcode

import (
	"fmt"
	"strings"
)

// whiteHex replaces the "undefined"/"defined" placeholders legacy clients send.
const whiteHex = "FFFFFF"

// Color is a palette entry with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// ParseColor decodes a six digit hex token.
//
// The token is trimmed and an optional "0x" prefix is removed. Any value
// ending in "defined" decodes to white.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "0x")
	if strings.HasSuffix(hex, "defined") {
		hex = whiteHex
	}

	if len(hex) != 6 {
		return Color{}, &ColorError{Value: s, Reason: "invalid hex length"}
	}

	var ch [3]uint8
	for i, name := range [3]string{"red", "green", "blue"} {
		v, ok := hexByte(hex[2*i], hex[2*i+1])
		if !ok {
			return Color{}, &ColorError{Value: s, Reason: "invalid value for " + name}
		}
		ch[i] = v
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// String returns the six uppercase hex digits of c.
func (c Color) String() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func hexByte(hi, lo byte) (uint8, bool) {
	h, ok := hexNibble(hi)
	if !ok {
		return 0, false
	}
	l, ok := hexNibble(lo)
	if !ok {
		return 0, false
	}
	return h<<4 | l, true
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
