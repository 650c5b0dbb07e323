package alphabet

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/bits-and-blooms/bitset"

	"github.com/arloliu/charspan/errs"
	"github.com/arloliu/charspan/format"
	"github.com/arloliu/charspan/internal/hash"
	"github.com/arloliu/charspan/internal/options"
)

// IndexLookupFunc resolves a symbol to its 0-based rank within a map.
// It must return an error for symbols the map does not cover, and the
// returned rank must lie in [0, cardinality).
type IndexLookupFunc[S Symbol] func(sym S) (int, error)

// SymbolLookupFunc resolves a 0-based rank to its symbol. It is only
// invoked with ranks in [0, cardinality) and must return a valid symbol of
// the map's kind.
type SymbolLookupFunc[S Symbol] func(index int) (S, error)

// Map is a bidirectional mapping between symbols and their dense 0-based
// ranks across one or more disjoint intervals.
//
// Without lookup functions the map is eager: full forward and backward
// tables are materialized at construction and lookups never mutate state.
// With lookup functions (WithLookupFuncs) the map is lazy: lookups delegate
// to the supplied functions, validate the results, and cache them under a
// mutex, so a Map may be shared read-only across any number of ranges and
// goroutines.
type Map[S Symbol] struct {
	intervals   []Interval[S]
	kind        format.SymbolKind
	cardinality int
	fingerprint uint64

	indexLookup  IndexLookupFunc[S]
	symbolLookup SymbolLookupFunc[S]

	// Eager tables; nil for lazy maps. Immutable after construction.
	forward  map[S]int
	backward []S
	members  *bitset.BitSet

	// Lazy caches; nil for eager maps. Guarded by mu.
	mu       sync.Mutex
	fwdCache map[S]int
	bwdCache map[int]S
}

// MapOption represents a functional option for configuring a Map.
type MapOption[S Symbol] = options.Option[*Map[S]]

// WithLookupFuncs switches a map to lazy mode. Both functions must be
// supplied; providing only one is a configuration conflict. The functions
// are expected to be O(1) replacements for table lookups (for example plain
// codepoint arithmetic over the Unicode space) and must agree with the
// map's interval geometry.
func WithLookupFuncs[S Symbol](indexOf IndexLookupFunc[S], symbolAt SymbolLookupFunc[S]) MapOption[S] {
	return options.New(func(m *Map[S]) error {
		if (indexOf == nil) != (symbolAt == nil) {
			return fmt.Errorf("%w: lookup functions must be both given or both omitted", errs.ErrConfigurationConflict)
		}

		m.indexLookup = indexOf
		m.symbolLookup = symbolAt

		return nil
	})
}

// NewMap creates a map over the given intervals, assigning contiguous ranks
// 0..cardinality-1 in interval list order.
//
// Parameters:
//   - intervals: At least one interval; intervals must not overlap.
//   - opts: Optional configuration, currently WithLookupFuncs.
//
// Returns:
//   - *Map[S]: The constructed map.
//   - error: errs.ErrNoIntervals for an empty interval list,
//     errs.ErrConfigurationConflict for an invalid option combination,
//     errs.ErrOverlappingIntervals if any two intervals share a symbol.
func NewMap[S Symbol](intervals []Interval[S], opts ...MapOption[S]) (*Map[S], error) {
	if len(intervals) == 0 {
		return nil, errs.ErrNoIntervals
	}

	m := &Map[S]{
		intervals: append([]Interval[S](nil), intervals...),
		kind:      KindOf[S](),
	}

	if err := options.Apply(m, opts...); err != nil {
		return nil, err
	}

	pairs := make([][2]uint32, len(m.intervals))
	for i, iv := range m.intervals {
		m.cardinality += iv.Len()
		pairs[i] = iv.codepoints()
	}
	m.fingerprint = hash.Geometry(uint8(m.kind), pairs)

	if m.lazy() {
		// Overlap is checked geometrically; enumeration may be unaffordable
		// for the alphabets lazy maps exist to serve.
		for i, iv := range m.intervals {
			for _, seen := range m.intervals[:i] {
				if iv.Intersects(seen) {
					return nil, fmt.Errorf("%w: %s and %s", errs.ErrOverlappingIntervals, seen, iv)
				}
			}
		}

		m.fwdCache = make(map[S]int)
		m.bwdCache = make(map[int]S)

		return m, nil
	}

	if err := m.populate(); err != nil {
		return nil, err
	}

	return m, nil
}

// populate materializes the eager forward/backward tables. A symbol already
// present in the occupancy set signals overlapping intervals.
func (m *Map[S]) populate() error {
	maxEnd := 0
	for _, iv := range m.intervals {
		maxEnd = max(maxEnd, int(iv.end))
	}

	seen := bitset.New(uint(maxEnd) + 1)
	m.forward = make(map[S]int, m.cardinality)
	m.backward = make([]S, 0, m.cardinality)

	index := 0
	for _, iv := range m.intervals {
		for cp := int(iv.start); cp <= int(iv.end); cp++ {
			if seen.Test(uint(cp)) {
				return fmt.Errorf("%w: %s already covers %s", errs.ErrOverlappingIntervals, m, symbolRepr(S(cp)))
			}
			seen.Set(uint(cp))

			sym := S(cp)
			m.forward[sym] = index
			m.backward = append(m.backward, sym)
			index++
		}
	}

	m.members = seen

	return nil
}

// lazy reports whether the map delegates misses to lookup functions.
func (m *Map[S]) lazy() bool {
	return m.indexLookup != nil
}

// Cardinality returns the total count of symbols the map recognizes.
// This is the counting base used by range enumeration.
func (m *Map[S]) Cardinality() int { return m.cardinality }

// Kind returns the map's symbol kind.
func (m *Map[S]) Kind() format.SymbolKind { return m.kind }

// Intervals returns a copy of the map's interval list.
func (m *Map[S]) Intervals() []Interval[S] {
	return append([]Interval[S](nil), m.intervals...)
}

// Fingerprint returns the xxHash64 of the map's interval geometry and kind.
// Maps with identical geometry share a fingerprint regardless of lookup
// strategy.
func (m *Map[S]) Fingerprint() uint64 { return m.fingerprint }

// IndexOf resolves a symbol to its 0-based rank.
//
// Eager maps answer from the materialized table and fail with
// errs.ErrSymbolNotFound on a miss. Lazy maps answer from the cache when
// possible; otherwise the supplied lookup function is invoked, its result
// validated against [0, Cardinality()) (errs.ErrInvalidIndex on violation),
// cached, and returned.
//
// Fails with errs.ErrNotASymbol if sym is not a valid symbol of the map's
// kind.
func (m *Map[S]) IndexOf(sym S) (int, error) {
	if !ValidSymbol(sym) {
		return 0, fmt.Errorf("%w: %s is not a valid %s", errs.ErrNotASymbol, symbolRepr(sym), m.kind)
	}

	if !m.lazy() {
		index, ok := m.forward[sym]
		if !ok {
			return 0, fmt.Errorf("%w: %s", errs.ErrSymbolNotFound, symbolRepr(sym))
		}

		return index, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if index, ok := m.fwdCache[sym]; ok {
		return index, nil
	}

	index, err := m.indexLookup(sym)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", errs.ErrSymbolNotFound, symbolRepr(sym), err)
	}
	if index < 0 || index >= m.cardinality {
		return 0, fmt.Errorf("%w: lookup returned %d for %s, want [0, %d)", errs.ErrInvalidIndex, index, symbolRepr(sym), m.cardinality)
	}

	m.fwdCache[sym] = index

	return index, nil
}

// SymbolAt resolves a 0-based rank to its symbol, the inverse of IndexOf.
//
// Fails with errs.ErrIndexOutOfRange if index is not in [0, Cardinality()).
// Lazy maps validate the lookup function's result and fail with
// errs.ErrInvalidSymbol if it is not a valid symbol of the map's kind.
func (m *Map[S]) SymbolAt(index int) (S, error) {
	var zero S
	if index < 0 || index >= m.cardinality {
		return zero, fmt.Errorf("%w: %d not in [0, %d)", errs.ErrIndexOutOfRange, index, m.cardinality)
	}

	if !m.lazy() {
		return m.backward[index], nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if sym, ok := m.bwdCache[index]; ok {
		return sym, nil
	}

	sym, err := m.symbolLookup(index)
	if err != nil {
		return zero, fmt.Errorf("%w: lookup failed for index %d: %v", errs.ErrInvalidSymbol, index, err)
	}
	if !ValidSymbol(sym) {
		return zero, fmt.Errorf("%w: lookup returned %s for index %d", errs.ErrInvalidSymbol, symbolRepr(sym), index)
	}

	m.bwdCache[index] = sym

	return sym, nil
}

// Contains reports whether sym is a member of the map. Eager maps answer
// from the occupancy set in O(1); lazy maps consult the lookup path and
// treat any failure as absence.
func (m *Map[S]) Contains(sym S) bool {
	if !ValidSymbol(sym) {
		return false
	}

	if m.members != nil {
		return m.members.Test(uint(int(sym)))
	}

	_, err := m.IndexOf(sym)

	return err == nil
}

// Combine concatenates the interval lists of two maps into a new map.
// The receiving map's lookup strategy carries over.
//
// Fails with errs.ErrConfigurationConflict when the two maps use different
// lookup strategies (lazy vs eager, or different lookup functions compared
// by identity): the combined map must stay queryable through one coherent
// strategy.
func (m *Map[S]) Combine(other *Map[S]) (*Map[S], error) {
	if m.lazy() != other.lazy() ||
		(m.lazy() && (funcID(m.indexLookup) != funcID(other.indexLookup) ||
			funcID(m.symbolLookup) != funcID(other.symbolLookup))) {
		return nil, fmt.Errorf("%w: maps having different lookup strategies cannot be combined", errs.ErrConfigurationConflict)
	}

	merged := make([]Interval[S], 0, len(m.intervals)+len(other.intervals))
	merged = append(merged, m.intervals...)
	merged = append(merged, other.intervals...)

	return NewMap(merged, WithLookupFuncs(m.indexLookup, m.symbolLookup))
}

// CombineInterval concatenates one extra interval onto the map's interval
// list, keeping the map's lookup strategy.
func (m *Map[S]) CombineInterval(iv Interval[S]) (*Map[S], error) {
	merged := make([]Interval[S], 0, len(m.intervals)+1)
	merged = append(merged, m.intervals...)
	merged = append(merged, iv)

	return NewMap(merged, WithLookupFuncs(m.indexLookup, m.symbolLookup))
}

// String renders the map's intervals in character-class notation.
func (m *Map[S]) String() string {
	s := ""
	for _, iv := range m.intervals {
		s += iv.String()
	}

	return "[" + s + "]"
}

// funcID returns a comparable identity for a function value.
func funcID(fn any) uintptr {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.IsNil() {
		return 0
	}

	return v.Pointer()
}
