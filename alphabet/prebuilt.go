package alphabet

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arloliu/charspan/errs"
)

// Prebuilt maps are process-wide, immutable singletons built on first use
// through the public NewMap constructor. The core treats them exactly like
// caller-supplied maps.

func mustMap[S Symbol](m *Map[S], err error) *Map[S] {
	if err != nil {
		panic(err)
	}

	return m
}

// asciiIndexOf ranks a character or byte by its codepoint, restricted to
// the 8-bit range.
func asciiIndexOf[S Symbol](sym S) (int, error) {
	cp := int(sym)
	if cp < 0 || cp > maxByteValue {
		return 0, fmt.Errorf("not an ASCII character or byte: %s", symbolRepr(sym))
	}

	return cp, nil
}

// asciiSymbolAt is the inverse of asciiIndexOf.
func asciiSymbolAt[S Symbol](index int) (S, error) {
	return S(index), nil
}

var (
	lowercaseOnce = sync.OnceValue(func() *Map[rune] {
		return mustMap(NewMap([]Interval[rune]{MustInterval('a', 'z')}))
	})
	uppercaseOnce = sync.OnceValue(func() *Map[rune] {
		return mustMap(NewMap([]Interval[rune]{MustInterval('A', 'Z')}))
	})
	lettersOnce = sync.OnceValue(func() *Map[rune] {
		return mustMap(Lowercase().Combine(Uppercase()))
	})
	digitsOnce = sync.OnceValue(func() *Map[rune] {
		return mustMap(NewMap([]Interval[rune]{MustInterval('0', '9')}))
	})
	hexLowerOnce = sync.OnceValue(func() *Map[rune] {
		return mustMap(Digits().CombineInterval(MustInterval('a', 'f')))
	})
	hexUpperOnce = sync.OnceValue(func() *Map[rune] {
		return mustMap(Digits().CombineInterval(MustInterval('A', 'F')))
	})
	base36LowerOnce = sync.OnceValue(func() *Map[rune] {
		return mustMap(Digits().Combine(Lowercase()))
	})
	base36UpperOnce = sync.OnceValue(func() *Map[rune] {
		return mustMap(Digits().Combine(Uppercase()))
	})
	asciiOnce = sync.OnceValue(func() *Map[rune] {
		return mustMap(NewMap(
			[]Interval[rune]{MustInterval[rune](0x00, 0xFF)},
			WithLookupFuncs(asciiIndexOf[rune], asciiSymbolAt[rune]),
		))
	})
	nonASCIIOnce = sync.OnceValue(func() *Map[rune] {
		return mustMap(NewMap(
			[]Interval[rune]{MustInterval[rune](0x100, maxRuneValue)},
			WithLookupFuncs(
				func(r rune) (int, error) {
					if r < 0x100 {
						return 0, fmt.Errorf("not a non-ASCII character: %s", symbolRepr(r))
					}

					return int(r) - 0x100, nil
				},
				func(index int) (rune, error) {
					return rune(index + 0x100), nil
				},
			),
		))
	})
	unicodeOnce = sync.OnceValue(func() *Map[rune] {
		return mustMap(NewMap(
			[]Interval[rune]{MustInterval[rune](0x00, maxRuneValue)},
			WithLookupFuncs(
				func(r rune) (int, error) { return int(r), nil },
				func(index int) (rune, error) { return rune(index), nil },
			),
		))
	})
)

// Lowercase returns the a-z character map.
func Lowercase() *Map[rune] { return lowercaseOnce() }

// Uppercase returns the A-Z character map.
func Uppercase() *Map[rune] { return uppercaseOnce() }

// Letters returns the a-zA-Z character map.
func Letters() *Map[rune] { return lettersOnce() }

// Digits returns the 0-9 character map.
func Digits() *Map[rune] { return digitsOnce() }

// HexLower returns the 0-9a-f character map.
func HexLower() *Map[rune] { return hexLowerOnce() }

// HexUpper returns the 0-9A-F character map.
func HexUpper() *Map[rune] { return hexUpperOnce() }

// Base36Lower returns the 0-9a-z character map.
func Base36Lower() *Map[rune] { return base36LowerOnce() }

// Base36Upper returns the 0-9A-Z character map.
func Base36Upper() *Map[rune] { return base36UpperOnce() }

// ASCII returns the lazy character map over the 8-bit codepoint range,
// ranked by plain codepoint arithmetic.
func ASCII() *Map[rune] { return asciiOnce() }

// NonASCII returns the lazy character map over codepoints 0x100 through
// 0x10FFFF.
func NonASCII() *Map[rune] { return nonASCIIOnce() }

// Unicode returns the lazy character map over the full Unicode codepoint
// space.
func Unicode() *Map[rune] { return unicodeOnce() }

var (
	lowercaseBytesOnce = sync.OnceValue(func() *Map[byte] {
		return mustMap(NewMap([]Interval[byte]{MustInterval[byte]('a', 'z')}))
	})
	uppercaseBytesOnce = sync.OnceValue(func() *Map[byte] {
		return mustMap(NewMap([]Interval[byte]{MustInterval[byte]('A', 'Z')}))
	})
	lettersBytesOnce = sync.OnceValue(func() *Map[byte] {
		return mustMap(LowercaseBytes().Combine(UppercaseBytes()))
	})
	digitsBytesOnce = sync.OnceValue(func() *Map[byte] {
		return mustMap(NewMap([]Interval[byte]{MustInterval[byte]('0', '9')}))
	})
	hexLowerBytesOnce = sync.OnceValue(func() *Map[byte] {
		return mustMap(DigitsBytes().CombineInterval(MustInterval[byte]('a', 'f')))
	})
	hexUpperBytesOnce = sync.OnceValue(func() *Map[byte] {
		return mustMap(DigitsBytes().CombineInterval(MustInterval[byte]('A', 'F')))
	})
	base36LowerBytesOnce = sync.OnceValue(func() *Map[byte] {
		return mustMap(DigitsBytes().Combine(LowercaseBytes()))
	})
	base36UpperBytesOnce = sync.OnceValue(func() *Map[byte] {
		return mustMap(DigitsBytes().Combine(UppercaseBytes()))
	})
	asciiBytesOnce = sync.OnceValue(func() *Map[byte] {
		return mustMap(NewMap(
			[]Interval[byte]{MustInterval[byte](0x00, 0xFF)},
			WithLookupFuncs(asciiIndexOf[byte], asciiSymbolAt[byte]),
		))
	})
)

// LowercaseBytes returns the a-z byte map.
func LowercaseBytes() *Map[byte] { return lowercaseBytesOnce() }

// UppercaseBytes returns the A-Z byte map.
func UppercaseBytes() *Map[byte] { return uppercaseBytesOnce() }

// LettersBytes returns the a-zA-Z byte map.
func LettersBytes() *Map[byte] { return lettersBytesOnce() }

// DigitsBytes returns the 0-9 byte map.
func DigitsBytes() *Map[byte] { return digitsBytesOnce() }

// HexLowerBytes returns the 0-9a-f byte map.
func HexLowerBytes() *Map[byte] { return hexLowerBytesOnce() }

// HexUpperBytes returns the 0-9A-F byte map.
func HexUpperBytes() *Map[byte] { return hexUpperBytesOnce() }

// Base36LowerBytes returns the 0-9a-z byte map.
func Base36LowerBytes() *Map[byte] { return base36LowerBytesOnce() }

// Base36UpperBytes returns the 0-9A-Z byte map.
func Base36UpperBytes() *Map[byte] { return base36UpperBytesOnce() }

// ASCIIBytes returns the lazy byte map over all 256 byte values, ranked by
// plain byte-value arithmetic.
func ASCIIBytes() *Map[byte] { return asciiBytesOnce() }

var characterRegistry = map[string]func() *Map[rune]{
	"ascii_lowercase":      Lowercase,
	"ascii_uppercase":      Uppercase,
	"ascii_letters":        Letters,
	"ascii_digits":         Digits,
	"lowercase_hex_digits": HexLower,
	"uppercase_hex_digits": HexUpper,
	"lowercase_base_36":    Base36Lower,
	"uppercase_base_36":    Base36Upper,
	"ascii":                ASCII,
	"non_ascii":            NonASCII,
	"unicode":              Unicode,
}

var byteRegistry = map[string]func() *Map[byte]{
	"ascii_lowercase":      LowercaseBytes,
	"ascii_uppercase":      UppercaseBytes,
	"ascii_letters":        LettersBytes,
	"ascii_digits":         DigitsBytes,
	"lowercase_hex_digits": HexLowerBytes,
	"uppercase_hex_digits": HexUpperBytes,
	"lowercase_base_36":    Base36LowerBytes,
	"uppercase_base_36":    Base36UpperBytes,
	"ascii":                ASCIIBytes,
}

// CharacterMapByName returns the prebuilt character map registered under
// name, failing with errs.ErrUnknownMapName for unregistered names.
// See CharacterMapNames for the registry contents.
func CharacterMapByName(name string) (*Map[rune], error) {
	build, ok := characterRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownMapName, name)
	}

	return build(), nil
}

// ByteMapByName returns the prebuilt byte map registered under name,
// failing with errs.ErrUnknownMapName for unregistered names.
func ByteMapByName(name string) (*Map[byte], error) {
	build, ok := byteRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownMapName, name)
	}

	return build(), nil
}

// CharacterMapNames returns the sorted names of all prebuilt character maps.
func CharacterMapNames() []string {
	names := make([]string, 0, len(characterRegistry))
	for name := range characterRegistry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ByteMapNames returns the sorted names of all prebuilt byte maps.
func ByteMapNames() []string {
	names := make([]string, 0, len(byteRegistry))
	for name := range byteRegistry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
