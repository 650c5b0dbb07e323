// Package errs defines the sentinel errors shared across charspan packages.
//
// Every validation failure in charspan is deterministic and caller-induced,
// so the library never retries or recovers internally. Call sites wrap these
// sentinels with context using fmt.Errorf("%w: ...", err), and callers match
// them with errors.Is.
package errs

import "errors"

// Alphabet construction and lookup errors.
var (
	// ErrNotASymbol indicates a value expected to be exactly one symbol
	// (a single rune or a single byte) is empty or longer than one unit.
	ErrNotASymbol = errors.New("not a single symbol")

	// ErrInvalidDirection indicates interval or range endpoints are out of
	// order: start ranks after end.
	ErrInvalidDirection = errors.New("start is greater than end")

	// ErrNoIntervals indicates a map was constructed with zero intervals.
	ErrNoIntervals = errors.New("at least one interval expected")

	// ErrConfigurationConflict indicates an invalid map configuration:
	// only one lookup function supplied, or an incompatible combination
	// of two maps with different lookup strategies.
	ErrConfigurationConflict = errors.New("conflicting map configuration")

	// ErrOverlappingIntervals indicates two intervals in one map share at
	// least one symbol.
	ErrOverlappingIntervals = errors.New("intervals must not overlap")

	// ErrIndexOutOfRange indicates a requested index lies outside
	// [0, cardinality).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidIndex indicates a caller-supplied lookup function returned
	// an index outside [0, cardinality).
	ErrInvalidIndex = errors.New("lookup returned invalid index")

	// ErrInvalidSymbol indicates a caller-supplied lookup function returned
	// a symbol the map's intervals do not cover.
	ErrInvalidSymbol = errors.New("lookup returned invalid symbol")

	// ErrSymbolNotFound indicates a symbol is not part of the map.
	ErrSymbolNotFound = errors.New("symbol not in map")

	// ErrUnknownMapName indicates a prebuilt map was requested under a name
	// the registry does not know.
	ErrUnknownMapName = errors.New("no prebuilt map with given name")
)

// Counter and range errors.
var (
	// ErrEmptyDigits indicates a counter was constructed from an empty
	// digit sequence.
	ErrEmptyDigits = errors.New("digit sequence must not be empty")

	// ErrInvalidBase indicates a counter base smaller than 1, or a digit
	// outside [0, base).
	ErrInvalidBase = errors.New("invalid counter base or digit")

	// ErrInvalidEndpoints indicates a range endpoint is empty or contains
	// a symbol absent from the range's map.
	ErrInvalidEndpoints = errors.New("invalid range endpoints")
)

// Snapshot errors.
var (
	// ErrInvalidSnapshot indicates snapshot data is truncated, has a bad
	// magic number, or fails structural validation.
	ErrInvalidSnapshot = errors.New("invalid snapshot data")

	// ErrUnsupportedCompression indicates a snapshot declares a compression
	// type this build does not support.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
