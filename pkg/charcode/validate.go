package charcode

import (
	validation "github.com/jellydator/validation"
)

// headerRules holds one length rule per header field. Length counts bytes.
var headerRules = func() [HeaderLength]validation.Rule {
	var rules [HeaderLength]validation.Rule
	for f := range HeaderField(HeaderLength) {
		rules[f] = validation.Length(0, f.MaxLen())
	}
	return rules
}()

// validateHeader checks fields in wire order and reports the first one
// over its bound.
func validateHeader(h Header) error {
	for f, v := range h.values() {
		field := HeaderField(f)
		if err := validation.Validate(v, headerRules[field]); err != nil {
			return &LengthViolation{Field: field, Max: field.MaxLen(), Length: len(v)}
		}
	}
	return nil
}

// Validate reports whether h would be accepted by Decode.
func (h Header) Validate() error {
	return validateHeader(h)
}
