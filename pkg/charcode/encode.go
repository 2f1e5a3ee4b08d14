package charcode

import (
	"strconv"
	"strings"
)

// Encode returns the canonical character code for r.
//
// Legacy records encode to CanonicalLength tokens and extended records to
// MaxLength tokens. Empty header fields encode as Sentinel. Encoding a
// padded record does not reproduce a short input exactly; the original
// tokens are a prefix of the result.
func Encode(r *Record) string {
	var b strings.Builder
	b.Grow(4 * MaxLength)

	for i, v := range r.header.values() {
		if i > 0 {
			b.WriteString(Delimiter)
		}
		if v == "" {
			v = Sentinel
		}
		b.WriteString(v)
	}
	for _, n := range r.numbers {
		b.WriteString(Delimiter)
		b.WriteString(strconv.FormatInt(int64(n), 10))
	}
	for _, c := range r.colors {
		b.WriteString(Delimiter)
		b.WriteString(c.String())
	}

	n2 := r.numbers2
	if limit := r.schema.Length() - numbers2Start; len(n2) > limit {
		n2 = n2[:limit]
	}
	for _, n := range n2 {
		b.WriteString(Delimiter)
		b.WriteString(strconv.FormatInt(int64(n), 10))
	}
	return b.String()
}
