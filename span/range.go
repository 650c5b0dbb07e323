package span

import (
	"fmt"
	"iter"
	"math/big"
	"strconv"

	"github.com/arloliu/charspan/alphabet"
	"github.com/arloliu/charspan/errs"
)

// Range is the inclusive sequence of symbol strings between two endpoints
// under an alphabet map. Both endpoints are part of the sequence.
//
// A Range is immutable after construction and holds a shared, read-only
// reference to its map; iteration state lives in per-cursor counters, so
// any number of iterations may run concurrently.
type Range[S alphabet.Symbol] struct {
	start []S
	end   []S
	m     *alphabet.Map[S]

	startDigits []int
	endDigits   []int
}

// New creates a range from start through end inclusive over the given map.
//
// Parameters:
//   - start, end: Non-empty endpoint symbol strings; every symbol must be a
//     member of m.
//   - m: The alphabet map supplying symbol ranks and the counting base.
//
// Returns:
//   - *Range[S]: The validated range.
//   - error: errs.ErrInvalidEndpoints if either endpoint is empty or
//     contains a symbol absent from m; errs.ErrInvalidDirection if start
//     ranks after end. A shorter endpoint always ranks before a longer one;
//     equal lengths compare position by position using map ranks, so the
//     ordering follows the alphabet's declared sequence, not native
//     collation.
func New[S alphabet.Symbol](start, end []S, m *alphabet.Map[S]) (*Range[S], error) {
	startDigits, err := toDigits(start, m)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", errs.ErrInvalidEndpoints, err)
	}

	endDigits, err := toDigits(end, m)
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", errs.ErrInvalidEndpoints, err)
	}

	if after(startDigits, endDigits) {
		return nil, fmt.Errorf("%w: start %s > end %s", errs.ErrInvalidDirection, endpointRepr(start), endpointRepr(end))
	}

	return &Range[S]{
		start:       append([]S(nil), start...),
		end:         append([]S(nil), end...),
		m:           m,
		startDigits: startDigits,
		endDigits:   endDigits,
	}, nil
}

// endpointRepr renders an endpoint for error messages.
func endpointRepr[S alphabet.Symbol](endpoint []S) string {
	rs := make([]rune, len(endpoint))
	for i, sym := range endpoint {
		rs[i] = rune(sym)
	}

	return strconv.Quote(string(rs))
}

// toDigits maps every symbol of an endpoint to its rank.
func toDigits[S alphabet.Symbol](endpoint []S, m *alphabet.Map[S]) ([]int, error) {
	if len(endpoint) == 0 {
		return nil, fmt.Errorf("endpoint is empty")
	}

	digits := make([]int, len(endpoint))
	for i, sym := range endpoint {
		index, err := m.IndexOf(sym)
		if err != nil {
			return nil, err
		}
		digits[i] = index
	}

	return digits, nil
}

// after reports whether the start digit sequence ranks after the end one:
// longer is always after, equal lengths compare lexicographically.
func after(start, end []int) bool {
	if len(start) != len(end) {
		return len(start) > len(end)
	}

	for i := range start {
		if start[i] != end[i] {
			return start[i] > end[i]
		}
	}

	return false
}

// Start returns a copy of the starting endpoint.
func (r *Range[S]) Start() []S { return append([]S(nil), r.start...) }

// End returns a copy of the ending endpoint.
func (r *Range[S]) End() []S { return append([]S(nil), r.end...) }

// Map returns the range's alphabet map.
func (r *Range[S]) Map() *alphabet.Map[S] { return r.m }

// All returns a lazy, finite iterator over every symbol string from start
// through end inclusive. Each call creates a fresh cursor, so the sequence
// is restartable and separate iterations never interfere.
//
// Every yielded slice is freshly allocated and owned by the caller.
//
// All panics if the map's caller-supplied lookup function violates its
// contract while rendering an element; lookup results are validated by the
// map on every cache miss, so this only occurs for a broken lookup
// implementation.
func (r *Range[S]) All() iter.Seq[[]S] {
	return func(yield func([]S) bool) {
		cur := r.counterFor(r.startDigits)
		end := r.counterFor(r.endDigits)

		for cur.Cmp(end) <= 0 {
			if !yield(r.render(cur)) {
				return
			}
			cur.Increment()
		}
	}
}

// Count returns the number of elements the range yields, computed in closed
// form without enumerating:
//
//	sum of base^w for w in [len(start), len(end))
//	+ int(counter(end)) - int(counter(start)) + 1
//
// The sum counts the full widths strictly between the endpoint widths plus
// the start width's tail; the counter difference trims both ends to the
// endpoints. The result agrees exactly with exhausting All for every valid
// endpoint pair.
func (r *Range[S]) Count() *big.Int {
	base := big.NewInt(int64(r.m.Cardinality()))

	total := new(big.Int)
	power := new(big.Int)
	for w := len(r.start); w < len(r.end); w++ {
		total.Add(total, power.Exp(base, big.NewInt(int64(w)), nil))
	}

	total.Add(total, r.counterFor(r.endDigits).Int())
	total.Sub(total, r.counterFor(r.startDigits).Int())
	total.Add(total, big.NewInt(1))

	return total
}

// counterFor builds a fresh cursor from precomputed endpoint digits.
func (r *Range[S]) counterFor(digits []int) *Counter {
	c, err := NewCounter(digits, r.m.Cardinality())
	if err != nil {
		// Endpoints were validated at construction and cardinality >= 1.
		panic(err)
	}

	return c
}

// render assembles the symbol string for the counter's current digits.
func (r *Range[S]) render(c *Counter) []S {
	digits := c.Digits()
	out := make([]S, len(digits))
	for i, d := range digits {
		sym, err := r.m.SymbolAt(d)
		if err != nil {
			panic(fmt.Sprintf("charspan: map lookup broke its contract during iteration: %v", err))
		}
		out[i] = sym
	}

	return out
}
