package charspan

import (
	"math/big"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/charspan/alphabet"
	"github.com/arloliu/charspan/errs"
)

func TestCharacterRange(t *testing.T) {
	r, err := CharacterRange("a", "c", alphabet.Lowercase())
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b", "c"}, slices.Collect(r.All()))
	require.Equal(t, big.NewInt(3), r.Count())
	require.Equal(t, "a", r.Start())
	require.Equal(t, "c", r.End())
}

func TestCharacterRange_MultiByteCharacters(t *testing.T) {
	// Endpoints are compared character by character, not byte by byte.
	r, err := CharacterRange("é", "ë", alphabet.Unicode())
	require.NoError(t, err)

	require.Equal(t, []string{"é", "ê", "ë"}, slices.Collect(r.All()))
	require.Equal(t, big.NewInt(3), r.Count())
}

func TestCharacterRange_Errors(t *testing.T) {
	_, err := CharacterRange("c", "a", alphabet.Lowercase())
	require.ErrorIs(t, err, errs.ErrInvalidDirection)

	_, err = CharacterRange("", "a", alphabet.Lowercase())
	require.ErrorIs(t, err, errs.ErrInvalidEndpoints)

	_, err = CharacterRange("a", "A", alphabet.Lowercase())
	require.ErrorIs(t, err, errs.ErrInvalidEndpoints)
}

func TestByteRange(t *testing.T) {
	r, err := ByteRange([]byte("x"), []byte("z"), alphabet.LowercaseBytes())
	require.NoError(t, err)

	var elems [][]byte
	for b := range r.All() {
		elems = append(elems, b)
	}
	require.Equal(t, [][]byte{[]byte("x"), []byte("y"), []byte("z")}, elems)
	require.Equal(t, big.NewInt(3), r.Count())
	require.Equal(t, []byte("x"), r.Start())
	require.Equal(t, []byte("z"), r.End())
}

func TestByteRange_Errors(t *testing.T) {
	_, err := ByteRange([]byte{0x7F}, []byte{0x00}, alphabet.ASCIIBytes())
	require.ErrorIs(t, err, errs.ErrInvalidDirection)

	_, err = ByteRange([]byte("a"), nil, alphabet.LowercaseBytes())
	require.ErrorIs(t, err, errs.ErrInvalidEndpoints)
}

func TestRange_Span(t *testing.T) {
	r, err := CharacterRange("a", "c", alphabet.Lowercase())
	require.NoError(t, err)
	require.Same(t, alphabet.Lowercase(), r.Span().Map())

	br, err := ByteRange([]byte("a"), []byte("c"), alphabet.LowercaseBytes())
	require.NoError(t, err)
	require.Same(t, alphabet.LowercaseBytes(), br.Span().Map())
}

func TestPrebuiltCharacterMap(t *testing.T) {
	m, err := PrebuiltCharacterMap("lowercase_hex_digits")
	require.NoError(t, err)
	require.Same(t, alphabet.HexLower(), m)

	_, err = PrebuiltCharacterMap("nope")
	require.ErrorIs(t, err, errs.ErrUnknownMapName)
}

func TestPrebuiltByteMap(t *testing.T) {
	m, err := PrebuiltByteMap("ascii_digits")
	require.NoError(t, err)
	require.Same(t, alphabet.DigitsBytes(), m)

	_, err = PrebuiltByteMap("unicode")
	require.ErrorIs(t, err, errs.ErrUnknownMapName)
}

func TestCharacterRange_GrowthExample(t *testing.T) {
	r, err := CharacterRange("zz", "aaa", alphabet.Lowercase())
	require.NoError(t, err)
	require.Equal(t, []string{"zz", "aaa"}, slices.Collect(r.All()))
	require.Equal(t, big.NewInt(2), r.Count())
}
