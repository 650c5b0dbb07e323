package alphabet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/charspan/errs"
)

func TestNewInterval(t *testing.T) {
	iv, err := NewInterval('a', 'z')
	require.NoError(t, err)
	require.Equal(t, 'a', iv.Start())
	require.Equal(t, 'z', iv.End())
	require.Equal(t, 26, iv.Len())
}

func TestNewInterval_SingleSymbol(t *testing.T) {
	iv, err := NewInterval[byte]('x', 'x')
	require.NoError(t, err)
	require.Equal(t, 1, iv.Len())
	require.True(t, iv.Contains('x'))
	require.False(t, iv.Contains('y'))
}

func TestNewInterval_InvalidDirection(t *testing.T) {
	_, err := NewInterval('z', 'a')
	require.ErrorIs(t, err, errs.ErrInvalidDirection)

	_, err = NewInterval[byte](0xFF, 0x00)
	require.ErrorIs(t, err, errs.ErrInvalidDirection)
}

func TestNewInterval_InvalidRune(t *testing.T) {
	_, err := NewInterval(rune(-1), 'a')
	require.ErrorIs(t, err, errs.ErrNotASymbol)

	_, err = NewInterval('a', rune(0x110000))
	require.ErrorIs(t, err, errs.ErrNotASymbol)
}

func TestInterval_At(t *testing.T) {
	iv := MustInterval('a', 'f')

	sym, err := iv.At(0)
	require.NoError(t, err)
	require.Equal(t, 'a', sym)

	sym, err = iv.At(5)
	require.NoError(t, err)
	require.Equal(t, 'f', sym)

	_, err = iv.At(6)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	_, err = iv.At(-1)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestInterval_All(t *testing.T) {
	iv := MustInterval[byte]('0', '4')

	var got []byte
	for sym := range iv.All() {
		got = append(got, sym)
	}
	require.Equal(t, []byte("01234"), got)

	// A fresh call restarts from the beginning.
	var restarted []byte
	for sym := range iv.All() {
		restarted = append(restarted, sym)
		break
	}
	require.Equal(t, []byte("0"), restarted)
}

func TestInterval_Intersects(t *testing.T) {
	testCases := []struct {
		name string
		a, b Interval[rune]
		want bool
	}{
		{"disjoint", MustInterval('a', 'f'), MustInterval('g', 'z'), false},
		{"adjacent endpoints shared", MustInterval('a', 'f'), MustInterval('f', 'z'), true},
		{"nested", MustInterval('a', 'z'), MustInterval('c', 'e'), true},
		{"identical", MustInterval('a', 'z'), MustInterval('a', 'z'), true},
		{"reverse order disjoint", MustInterval('g', 'z'), MustInterval('a', 'f'), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.Intersects(tc.b))
			require.Equal(t, tc.want, tc.b.Intersects(tc.a))
		})
	}
}

func TestInterval_Equality(t *testing.T) {
	require.Equal(t, MustInterval('a', 'z'), MustInterval('a', 'z'))
	require.NotEqual(t, MustInterval('a', 'z'), MustInterval('a', 'y'))
}

func TestInterval_Combine(t *testing.T) {
	m, err := MustInterval('0', '9').Combine(MustInterval('a', 'f'))
	require.NoError(t, err)
	require.Equal(t, 16, m.Cardinality())

	index, err := m.IndexOf('a')
	require.NoError(t, err)
	require.Equal(t, 10, index)
}

func TestInterval_Combine_Overlapping(t *testing.T) {
	_, err := MustInterval('a', 'k').Combine(MustInterval('f', 'p'))
	require.ErrorIs(t, err, errs.ErrOverlappingIntervals)
}

func TestInterval_String(t *testing.T) {
	require.Equal(t, "a-z", MustInterval('a', 'z').String())
	require.Equal(t, "x", MustInterval('x', 'x').String())
	require.Equal(t, `\x00-\xFF`, MustInterval[byte](0x00, 0xFF).String())
}
