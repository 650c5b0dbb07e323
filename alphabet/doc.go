// Package alphabet models ordered, finite symbol spaces: contiguous
// intervals of characters or bytes, and index maps that assign every symbol
// in one or more disjoint intervals a dense 0-based rank.
//
// # Overview
//
// An Interval is an inclusive, contiguous span of symbols ordered by
// codepoint or byte value, such as 'a'..'z' or 0x00..0xFF. A Map composes
// one or more non-overlapping intervals into a bidirectional symbol/index
// mapping whose cardinality serves as the counting base for range
// enumeration (see the span package).
//
// Maps come in two interchangeable modes behind one API:
//
//   - Eager: with no lookup functions, the constructor materializes full
//     forward and backward tables. Lookups are plain table hits.
//   - Lazy: with caller-supplied lookup functions (see WithLookupFuncs),
//     tables start empty and results are validated and cached per lookup.
//     This serves alphabets too large to materialize, such as the full
//     Unicode codepoint space, via O(1) arithmetic lookups.
//
// # Symbol Kinds
//
// The package is generic over the Symbol constraint with two instantiations:
// rune for Unicode scalar values and byte for raw bytes. Mixing kinds within
// one map is rejected by the type system rather than at runtime.
//
// # Prebuilt Maps
//
// Common alphabets (ASCII subsets, hex digits, base-36, the full Unicode
// space) are available as lazily-initialized process-wide singletons, each
// constructed through the public NewMap constructor and treated like any
// caller-supplied map. See Lowercase, Digits, Unicode, ASCIIBytes and the
// CharacterMapByName/ByteMapByName registries.
package alphabet
