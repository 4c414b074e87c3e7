package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeSplitsPreambleAndValues(t *testing.T) {
	mm := Tokenize(" 1 p/98765432 t/ t/friend", PrefixPhone, PrefixTag, PrefixName)

	assert.Equal(t, "1", mm.Preamble())
	v, ok := mm.Value(PrefixPhone)
	require.True(t, ok)
	assert.Equal(t, "98765432", v)
	assert.Equal(t, []string{"", "friend"}, mm.AllValues(PrefixTag))
	assert.Empty(t, mm.AllValues(PrefixName))
	assert.NotNil(t, mm.AllValues(PrefixName))
}

func TestTokenizeIgnoresGluedPrefixes(t *testing.T) {
	mm := Tokenize(" n/Alex p/x p/123", PrefixName, PrefixPhone)
	assert.Equal(t, []string{"Alex"}, mm.AllValues(PrefixName))
	assert.Equal(t, []string{"x", "123"}, mm.AllValues(PrefixPhone))

	mm = Tokenize(" n/Bob/p/123", PrefixName, PrefixPhone)
	assert.Equal(t, []string{"Bob/p/123"}, mm.AllValues(PrefixName))
	assert.Empty(t, mm.AllValues(PrefixPhone))
}

func TestTokenizeIgnoresPrefixGluedToNonASCII(t *testing.T) {
	// The second byte of "à" is 0xA0, which on its own reads as a no-break space.
	mm := Tokenize(" a/Rue Voltàp/91234567", PrefixAddress, PrefixPhone)
	assert.Equal(t, []string{"Rue Voltàp/91234567"}, mm.AllValues(PrefixAddress))
	assert.Empty(t, mm.AllValues(PrefixPhone))

	mm = Tokenize(" n/Zoë t/ß t/café", PrefixName, PrefixTag)
	assert.Equal(t, []string{"Zoë"}, mm.AllValues(PrefixName))
	assert.Equal(t, []string{"ß", "café"}, mm.AllValues(PrefixTag))
}

func TestTokenizeWithoutPrefixes(t *testing.T) {
	mm := Tokenize("  some text  ")
	assert.Equal(t, "some text", mm.Preamble())
}

func TestValueReturnsLastOccurrence(t *testing.T) {
	mm := Tokenize(" t/a t/b", PrefixTag)
	v, ok := mm.Value(PrefixTag)
	require.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestVerifyNoDuplicatePrefixesFor(t *testing.T) {
	mm := Tokenize(" n/A n/B p/1 p/2", PrefixName, PrefixPhone)

	err := mm.VerifyNoDuplicatePrefixesFor(PrefixPhone, PrefixName)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.ErrorIs(t, err, ErrDuplicatePrefix)
	assert.Equal(t, "p/", pe.Detail)

	assert.NoError(t, Tokenize(" n/A", PrefixName).VerifyNoDuplicatePrefixesFor(PrefixName))
}
