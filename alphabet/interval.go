package alphabet

import (
	"fmt"
	"iter"

	"github.com/arloliu/charspan/errs"
)

// Interval is an inclusive, contiguous span of symbols ordered by codepoint
// or byte value. It is immutable once constructed; equality is the equality
// of its endpoint pair.
type Interval[S Symbol] struct {
	start S
	end   S
}

// NewInterval creates an interval spanning start through end inclusive.
//
// Returns:
//   - Interval[S]: The validated interval.
//   - error: errs.ErrNotASymbol if either endpoint is not a valid symbol of
//     the declared kind, errs.ErrInvalidDirection if start ranks after end.
func NewInterval[S Symbol](start, end S) (Interval[S], error) {
	if !ValidSymbol(start) {
		return Interval[S]{}, fmt.Errorf("%w: %s is not a valid %s", errs.ErrNotASymbol, symbolRepr(start), KindOf[S]())
	}
	if !ValidSymbol(end) {
		return Interval[S]{}, fmt.Errorf("%w: %s is not a valid %s", errs.ErrNotASymbol, symbolRepr(end), KindOf[S]())
	}
	if start > end {
		return Interval[S]{}, fmt.Errorf("%w: %s > %s", errs.ErrInvalidDirection, symbolRepr(start), symbolRepr(end))
	}

	return Interval[S]{start: start, end: end}, nil
}

// MustInterval is like NewInterval but panics on invalid endpoints.
// It is intended for intervals built from constant endpoints.
func MustInterval[S Symbol](start, end S) Interval[S] {
	iv, err := NewInterval(start, end)
	if err != nil {
		panic(err)
	}

	return iv
}

// Start returns the first symbol of the interval.
func (iv Interval[S]) Start() S { return iv.start }

// End returns the last symbol of the interval.
func (iv Interval[S]) End() S { return iv.end }

// Len returns the number of symbols the interval spans.
func (iv Interval[S]) Len() int {
	return int(iv.end) - int(iv.start) + 1
}

// Contains reports whether sym lies within the interval.
func (iv Interval[S]) Contains(sym S) bool {
	return sym >= iv.start && sym <= iv.end
}

// At returns the i-th symbol of the interval in O(1).
//
// Returns:
//   - S: The symbol at rank i, computed as start + i.
//   - error: errs.ErrIndexOutOfRange if i is not in [0, Len()).
func (iv Interval[S]) At(i int) (S, error) {
	var zero S
	if i < 0 || i >= iv.Len() {
		return zero, fmt.Errorf("%w: %d not in [0, %d)", errs.ErrIndexOutOfRange, i, iv.Len())
	}

	return S(int(iv.start) + i), nil
}

// All returns a lazy, restartable iterator over every symbol of the
// interval in ascending order.
func (iv Interval[S]) All() iter.Seq[S] {
	return func(yield func(S) bool) {
		for cp := int(iv.start); cp <= int(iv.end); cp++ {
			if !yield(S(cp)) {
				return
			}
		}
	}
}

// Intersects reports whether the two intervals share at least one symbol.
func (iv Interval[S]) Intersects(other Interval[S]) bool {
	laterStart := max(iv.start, other.start)
	earlierEnd := min(iv.end, other.end)

	return laterStart <= earlierEnd
}

// Combine creates a two-interval Map from iv followed by other.
// The intervals must not overlap.
func (iv Interval[S]) Combine(other Interval[S]) (*Map[S], error) {
	return NewMap([]Interval[S]{iv, other})
}

// String renders the interval in character-class notation, e.g. "a-z".
func (iv Interval[S]) String() string {
	if iv.start == iv.end {
		return symbolRepr(iv.start)
	}

	return symbolRepr(iv.start) + "-" + symbolRepr(iv.end)
}

// codepoints returns the endpoint pair as unsigned codepoints for
// fingerprinting.
func (iv Interval[S]) codepoints() [2]uint32 {
	return [2]uint32{uint32(iv.start), uint32(iv.end)}
}
