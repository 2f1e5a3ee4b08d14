package charcode

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_MatchesFixture(t *testing.T) {
	code := loadCode(t, "default_478.code")
	require.Equal(t, code, DefaultCode())

	tokens := strings.Split(code, Delimiter)
	require.Len(t, tokens, CanonicalLength)
	require.Equal(t, defaultTemplate[CanonicalLength-1], tokens[CanonicalLength-1])
}

func TestDefault_Header(t *testing.T) {
	h := Default().Header()
	require.Equal(t, "placeholder", h.Name)
	require.Equal(t, "Coming soon!", h.Profile)
	for _, f := range []HeaderField{FieldBirthday, FieldAge, FieldCreator, FieldOccupation} {
		require.Equal(t, Sentinel, h.Field(f), f.String())
	}
}

func TestDefaultToken(t *testing.T) {
	tok, ok := DefaultToken(10)
	require.True(t, ok)
	require.Equal(t, "263", tok)

	tok, ok = DefaultToken(279)
	require.True(t, ok)
	require.Equal(t, "FFFFFF", tok)

	tok, ok = DefaultToken(CanonicalLength)
	require.True(t, ok)
	require.Equal(t, "0", tok)

	_, ok = DefaultToken(MaxLength)
	require.False(t, ok)
	_, ok = DefaultToken(-1)
	require.False(t, ok)
}

func TestTemplate_SegmentsAreWellFormed(t *testing.T) {
	for i := numbersStart; i < numbersEnd; i++ {
		_, err := parseInts("numbers", defaultTemplate[:], i, i+1)
		require.NoError(t, err, "template position %d", i)
	}
	for i := colorsStart; i < colorsEnd; i++ {
		_, err := ParseColor(defaultTemplate[i])
		require.NoError(t, err, "template position %d", i)
	}
	for i := numbers2Start; i < CanonicalLength; i++ {
		_, err := parseInts("numbers2", defaultTemplate[:], i, i+1)
		require.NoError(t, err, "template position %d", i)
	}
}

func TestEncode_SegmentOrder(t *testing.T) {
	rec := Default()
	tokens := strings.Split(Encode(rec), Delimiter)
	require.Len(t, tokens, CanonicalLength)

	require.Equal(t, "placeholder", tokens[0])
	require.Equal(t, "263", tokens[numbersStart])
	require.Equal(t, "FFFFFF", tokens[colorsStart])
	require.Equal(t, "6C71A4", tokens[colorsStart+1])
	require.Equal(t, "100", tokens[numbers2Start])
	require.Equal(t, "1", tokens[CanonicalLength-1])
}

func TestSchema_String(t *testing.T) {
	require.Equal(t, "legacy", SchemaLegacy.String())
	require.Equal(t, "extended", SchemaExtended.String())
	require.Equal(t, "Schema(7)", Schema(7).String())
	require.Equal(t, CanonicalLength, SchemaLegacy.Length())
	require.Equal(t, MaxLength, SchemaExtended.Length())
}

func TestDecode_Concurrent(t *testing.T) {
	code := loadCode(t, "default_boy_457.code")
	want := func() string {
		rec, err := Decode(code)
		require.NoError(t, err)
		return Encode(rec)
	}()

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := Decode(code)
			if err != nil {
				return
			}
			results[i] = Encode(rec)
		}()
	}
	wg.Wait()

	for i, got := range results {
		require.Equal(t, want, got, "goroutine %d", i)
	}
}
