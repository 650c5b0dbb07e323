package span

import (
	"fmt"
	"math/big"

	"github.com/arloliu/charspan/errs"
)

// Counter is a variable-length positional counter (an odometer) in a fixed
// base. Digits hold map ranks, most significant first on the public
// surface; the digit count grows by one when the most significant digit
// overflows.
//
// A Counter is never shared: each range iteration owns its own cursor.
type Counter struct {
	// digits are stored least significant first so a carry walks the slice
	// front to back.
	inverted []int
	base     int
}

// NewCounter creates a counter from an initial digit sequence, most
// significant digit first.
//
// Returns:
//   - *Counter: The constructed counter.
//   - error: errs.ErrEmptyDigits for an empty sequence,
//     errs.ErrInvalidBase if base < 1 or any digit lies outside [0, base).
func NewCounter(digits []int, base int) (*Counter, error) {
	if len(digits) == 0 {
		return nil, errs.ErrEmptyDigits
	}
	if base < 1 {
		return nil, fmt.Errorf("%w: base %d", errs.ErrInvalidBase, base)
	}

	inverted := make([]int, len(digits))
	for i, d := range digits {
		if d < 0 || d >= base {
			return nil, fmt.Errorf("%w: digit %d not in [0, %d)", errs.ErrInvalidBase, d, base)
		}
		inverted[len(digits)-1-i] = d
	}

	return &Counter{inverted: inverted, base: base}, nil
}

// Base returns the counting base: the maximum digit value plus one.
func (c *Counter) Base() int { return c.base }

// DigitCount returns the current number of digits.
func (c *Counter) DigitCount() int { return len(c.inverted) }

// Digits returns a copy of the digit sequence, most significant first.
func (c *Counter) Digits() []int {
	out := make([]int, len(c.inverted))
	for i, d := range c.inverted {
		out[len(out)-1-i] = d
	}

	return out
}

// Increment adds one to the least significant digit, carrying toward the
// most significant one. When every digit overflows, the sequence resets to
// all zeros and gains one more digit:
//
//	[0 0] -> [0 1]
//	[0 1] -> [1 0]   (base 2)
//	[1 1] -> [0 0 0]
//
// The growth by one digit models one additional alphabet position, so over
// a 26-symbol alphabet the successor of "zz" is "aaa".
func (c *Counter) Increment() {
	for i := range c.inverted {
		c.inverted[i]++
		if c.inverted[i] < c.base {
			return
		}
		c.inverted[i] = 0
	}

	c.inverted = append(c.inverted, 0)
}

// Int interprets the digit sequence as a base-Base integer. The result is
// arbitrary precision: even a modest alphabet overflows uint64 within a few
// digits, and the closed-form range length must stay exact.
func (c *Counter) Int() *big.Int {
	total := new(big.Int)
	base := big.NewInt(int64(c.base))
	digit := new(big.Int)

	for i := len(c.inverted) - 1; i >= 0; i-- {
		total.Mul(total, base)
		total.Add(total, digit.SetInt64(int64(c.inverted[i])))
	}

	return total
}

// Cmp compares two counters: a counter with fewer digits is always less
// than one with more, regardless of numeric value; equal digit counts
// compare digit-lexicographically from the most significant digit.
// It returns -1, 0 or 1.
func (c *Counter) Cmp(other *Counter) int {
	if len(c.inverted) != len(other.inverted) {
		if len(c.inverted) < len(other.inverted) {
			return -1
		}

		return 1
	}

	for i := len(c.inverted) - 1; i >= 0; i-- {
		if c.inverted[i] != other.inverted[i] {
			if c.inverted[i] < other.inverted[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}

// Clone returns an independent copy of the counter.
func (c *Counter) Clone() *Counter {
	return &Counter{
		inverted: append([]int(nil), c.inverted...),
		base:     c.base,
	}
}

// String renders the counter for debugging, most significant digit first.
func (c *Counter) String() string {
	return fmt.Sprintf("Counter(%v, base=%d)", c.Digits(), c.base)
}
