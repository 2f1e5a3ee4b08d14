// Package charcode implements decoding and encoding of character codes.
//
// A character code is a '|' separated string describing one game character.
// Tokens are positionally typed:
//
//	[0, 10)     header: name, birthday, age, profile, creator,
//	            favorite color, favorite food, location, personality,
//	            occupation
//	[10, 279)   numbers: signed 32-bit appearance values
//	[279, 447)  colors: six digit hex RGB values
//	[447, 507)  numbers2: signed 32-bit values; [478, 507) is the
//	            extension block sent by newer clients
//
// # Basic Usage
//
//	rec, err := charcode.Decode(raw)
//	if err != nil {
//	    return err
//	}
//	canonical := charcode.Encode(rec)
//
// # Versions
//
// Codes between MinLength and CanonicalLength tokens come from older
// clients. Missing positions are filled from a fixed reference character
// and the extension block is filled with zeros. Such codes decode as
// SchemaLegacy and encode back to CanonicalLength tokens. Codes longer than
// CanonicalLength decode as SchemaExtended and encode to MaxLength tokens.
//
// Empty tokens are replaced by Sentinel ("-"), so an empty age encodes as
// "-".
//
// # Errors
//
// Decode returns *SizeError (ErrWrongSize) when the token count is out of
// range, *FieldParseError (ErrFieldParse) when a numeric or color token is
// malformed, and *LengthViolation (ErrLengthViolation) when a header field
// is too long. No partially decoded record is ever returned.
//
// Decode and Encode keep no state and are safe for concurrent use.
package charcode
