package charcode

import "strings"

// Default returns the reference character, with empty header fields
// replaced by Sentinel.
func Default() *Record {
	r, err := Decode(strings.Join(defaultTemplate[:], Delimiter))
	if err != nil {
		panic("charcode: reference template does not decode: " + err.Error())
	}
	return r
}

// DefaultCode returns the canonical character code of Default.
func DefaultCode() string {
	return Encode(Default())
}

// DefaultToken returns the template value for token position i, or "0" for
// positions in the extension block. It returns false outside [0, MaxLength).
func DefaultToken(i int) (string, bool) {
	switch {
	case i < 0 || i >= MaxLength:
		return "", false
	case i < CanonicalLength:
		return defaultTemplate[i], true
	default:
		return "0", true
	}
}
