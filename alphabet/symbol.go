package alphabet

import (
	"fmt"

	"github.com/arloliu/charspan/format"
)

// Symbol is the atomic unit of an alphabet: a single Unicode scalar value
// (rune) or a single raw byte. Symbols are ordered by their codepoint or
// byte value and convert to and from an unsigned integer rank.
type Symbol interface {
	~rune | ~byte
}

const (
	maxByteValue = 0xFF
	maxRuneValue = 0x10FFFF
)

// KindOf reports the symbol kind of the instantiated type parameter.
func KindOf[S Symbol]() format.SymbolKind {
	var zero S
	if _, ok := any(zero).(byte); ok {
		return format.KindByte
	}

	return format.KindCharacter
}

// maxCodepoint returns the largest codepoint valid for the symbol kind.
func maxCodepoint[S Symbol]() int {
	if KindOf[S]() == format.KindByte {
		return maxByteValue
	}

	return maxRuneValue
}

// ValidSymbol reports whether sym is a valid single symbol of its kind.
// Bytes always are; runes must lie within the Unicode codepoint space.
func ValidSymbol[S Symbol](sym S) bool {
	return int64(sym) >= 0 && int64(sym) <= int64(maxCodepoint[S]())
}

// symbolRepr renders a symbol for error messages: printable ASCII verbatim,
// everything else as a \x, \u or \U escape.
func symbolRepr[S Symbol](sym S) string {
	cp := int64(sym)

	switch {
	case cp == '\\':
		return `\\`
	case cp >= ' ' && cp <= '~':
		return string(rune(cp))
	case cp >= 0 && cp <= 0xFF:
		return fmt.Sprintf(`\x%02X`, cp)
	case cp >= 0 && cp <= 0xFFFF:
		return fmt.Sprintf(`\u%04X`, cp)
	default:
		return fmt.Sprintf(`\U%08X`, cp)
	}
}
