// Package charspan generates ordered sequences of strings or byte strings
// between two endpoints, where each position is a digit drawn from a
// constrained, possibly user-defined alphabet rather than the ten decimal
// digits — for example enumerating "a".."zz" with letters as the digits of
// a variable-length base-26 counter, or enumerating byte sequences over an
// arbitrary byte subset.
//
// # Basic Usage
//
// Enumerating a character range over a prebuilt alphabet:
//
//	r, _ := charspan.CharacterRange("a", "c", alphabet.Lowercase())
//	for s := range r.All() {
//	    fmt.Println(s) // "a", "b", "c"
//	}
//
// Ranges cross width boundaries the way natural numbers grow digits:
//
//	r, _ := charspan.CharacterRange("0", "19", alphabet.Digits())
//	r.Count() // 30: "0".."9", "00".."09", "10".."19"
//
// Custom alphabets are unions of disjoint intervals:
//
//	iv, _ := alphabet.NewInterval('a', 'f')
//	m, _ := alphabet.NewMap([]alphabet.Interval[rune]{iv})
//	r, _ := charspan.CharacterRange("ace", "fff", m)
//
// Alphabets too large to materialize (the full Unicode codepoint space) use
// lazy maps with O(1) lookup functions; see alphabet.WithLookupFuncs and
// alphabet.Unicode.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the alphabet
// and span packages, simplifying the most common use cases. For advanced
// usage and fine-grained control, use those packages directly. The snapshot
// package materializes a range into a compact, optionally compressed binary
// blob.
package charspan

import (
	"iter"
	"math/big"

	"github.com/arloliu/charspan/alphabet"
	"github.com/arloliu/charspan/span"
)

// StringRange is the inclusive sequence of strings between two endpoints
// under a character map.
type StringRange struct {
	r *span.Range[rune]
}

// CharacterRange creates the inclusive range of strings from start through
// end over the given character map.
//
// Parameters:
//   - start, end: Non-empty endpoint strings whose every character is a
//     member of m. A shorter endpoint always ranks before a longer one;
//     equal lengths compare by the map's declared symbol order.
//   - m: The character map supplying symbol ranks and the counting base.
//
// Returns:
//   - *StringRange: The validated range.
//   - error: errs.ErrInvalidEndpoints or errs.ErrInvalidDirection, see
//     span.New.
//
// Example:
//
//	r, err := charspan.CharacterRange("y", "aaab", alphabet.Lowercase())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	total := r.Count() // 26 + 26^2 + 26^3 + index("aaab") - index("y") + 1
func CharacterRange(start, end string, m *alphabet.Map[rune]) (*StringRange, error) {
	r, err := span.New([]rune(start), []rune(end), m)
	if err != nil {
		return nil, err
	}

	return &StringRange{r: r}, nil
}

// All returns a lazy, restartable iterator over every string of the range,
// both endpoints included.
func (sr *StringRange) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for syms := range sr.r.All() {
			if !yield(string(syms)) {
				return
			}
		}
	}
}

// Count returns the number of strings the range yields, computed in closed
// form without enumerating.
func (sr *StringRange) Count() *big.Int { return sr.r.Count() }

// Start returns the starting endpoint.
func (sr *StringRange) Start() string { return string(sr.r.Start()) }

// End returns the ending endpoint.
func (sr *StringRange) End() string { return string(sr.r.End()) }

// Span returns the underlying generic range.
func (sr *StringRange) Span() *span.Range[rune] { return sr.r }

// BytesRange is the inclusive sequence of byte strings between two
// endpoints under a byte map.
type BytesRange struct {
	r *span.Range[byte]
}

// ByteRange creates the inclusive range of byte strings from start through
// end over the given byte map. It is the byte-kind counterpart of
// CharacterRange; endpoint and direction validation are identical.
func ByteRange(start, end []byte, m *alphabet.Map[byte]) (*BytesRange, error) {
	r, err := span.New(start, end, m)
	if err != nil {
		return nil, err
	}

	return &BytesRange{r: r}, nil
}

// All returns a lazy, restartable iterator over every byte string of the
// range, both endpoints included. Each yielded slice is freshly allocated
// and owned by the caller.
func (br *BytesRange) All() iter.Seq[[]byte] {
	return br.r.All()
}

// Count returns the number of byte strings the range yields, computed in
// closed form without enumerating.
func (br *BytesRange) Count() *big.Int { return br.r.Count() }

// Start returns a copy of the starting endpoint.
func (br *BytesRange) Start() []byte { return br.r.Start() }

// End returns a copy of the ending endpoint.
func (br *BytesRange) End() []byte { return br.r.End() }

// Span returns the underlying generic range.
func (br *BytesRange) Span() *span.Range[byte] { return br.r }

// PrebuiltCharacterMap returns the prebuilt character map registered under
// name (for example "ascii_lowercase" or "unicode").
//
// See alphabet.CharacterMapNames for the available names.
func PrebuiltCharacterMap(name string) (*alphabet.Map[rune], error) {
	return alphabet.CharacterMapByName(name)
}

// PrebuiltByteMap returns the prebuilt byte map registered under name.
//
// See alphabet.ByteMapNames for the available names.
func PrebuiltByteMap(name string) (*alphabet.Map[byte], error) {
	return alphabet.ByteMapByName(name)
}
