package charcode_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gachaplus/charcode/pkg/charcode"
)

func ExampleDecode() {
	rec, err := charcode.Decode(charcode.DefaultCode())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(rec.Header().Name)
	fmt.Println(rec.Header().Age)
	fmt.Println(rec.Schema())
	fmt.Println(rec.Colors()[1])
	// Output:
	// placeholder
	// -
	// legacy
	// 6C71A4
}

func ExampleDecode_wrongSize() {
	_, err := charcode.Decode("Default Boy|2/22|20")
	fmt.Println(errors.Is(err, charcode.ErrWrongSize))
	fmt.Println(err)
	// Output:
	// true
	// charcode: wrong size: 3 tokens, want 445..507
}

func ExampleEncode() {
	tokens := strings.Split(charcode.DefaultCode(), charcode.Delimiter)
	tokens[charcode.FieldName] = "Default Boy"

	rec, err := charcode.Decode(strings.Join(tokens[:charcode.MinLength], charcode.Delimiter))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	out := charcode.Encode(rec)
	fmt.Println(strings.HasPrefix(out, "Default Boy|-|-|Coming soon!|"))
	fmt.Println(len(strings.Split(out, charcode.Delimiter)))
	// Output:
	// true
	// 478
}

func ExampleParseColor() {
	for _, tok := range []string{"ABCDEF", "0xabcdef", "undefined"} {
		c, err := charcode.ParseColor(tok)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(c, c.R, c.G, c.B)
	}
	// Output:
	// ABCDEF 171 205 239
	// ABCDEF 171 205 239
	// FFFFFF 255 255 255
}
