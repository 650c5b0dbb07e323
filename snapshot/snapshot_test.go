package snapshot

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/charspan/alphabet"
	"github.com/arloliu/charspan/errs"
	"github.com/arloliu/charspan/format"
	"github.com/arloliu/charspan/span"
)

func lowercaseRange(t *testing.T, start, end string) *span.Range[rune] {
	t.Helper()

	r, err := span.New([]rune(start), []rune(end), alphabet.Lowercase())
	require.NoError(t, err)

	return r
}

func TestEncode_RoundTrip(t *testing.T) {
	r := lowercaseRange(t, "y", "ab")

	s, err := Encode(r)
	require.NoError(t, err)
	require.Equal(t, 4, s.Count()) // y, z, aa, ab
	require.Equal(t, format.KindCharacter, s.Kind())
	require.Equal(t, format.CompressionNone, s.Compression())

	want := []string{"y", "z", "aa", "ab"}
	for i, elem := range s.All() {
		require.Equal(t, want[i], string(elem))
	}
}

func TestEncode_Compressed(t *testing.T) {
	r := lowercaseRange(t, "aa", "zz")

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			s, err := Encode(r, WithCompression(compression))
			require.NoError(t, err)
			require.Equal(t, compression, s.Compression())
			require.Equal(t, 26*26, s.Count())

			elem, err := s.At(0)
			require.NoError(t, err)
			require.Equal(t, "aa", string(elem))

			elem, err = s.At(26*26 - 1)
			require.NoError(t, err)
			require.Equal(t, "zz", string(elem))

			// The blob parses back without the encoder in hand.
			reparsed, err := Parse(s.Bytes())
			require.NoError(t, err)
			require.Equal(t, s.Count(), reparsed.Count())
		})
	}
}

func TestEncode_UnsupportedCompression(t *testing.T) {
	r := lowercaseRange(t, "a", "c")

	_, err := Encode(r, WithCompression(format.CompressionType(0xEE)))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestEncode_ByteRange(t *testing.T) {
	r, err := span.New([]byte{0x00}, []byte{0x05}, alphabet.ASCIIBytes())
	require.NoError(t, err)

	s, err := Encode(r)
	require.NoError(t, err)
	require.Equal(t, format.KindByte, s.Kind())
	require.Equal(t, 6, s.Count())

	elem, err := s.At(3)
	require.NoError(t, err)
	require.Equal(t, []byte{0x03}, elem)
}

func TestEncode_MultiByteCharacters(t *testing.T) {
	// Character elements are stored UTF-8 encoded.
	r, err := span.New([]rune("é"), []rune("ë"), alphabet.Unicode())
	require.NoError(t, err)

	s, err := Encode(r)
	require.NoError(t, err)
	require.Equal(t, 3, s.Count())

	want := []string{"é", "ê", "ë"}
	for i, str := range s.Strings() {
		require.Equal(t, want[i], str)
	}
}

func TestSnapshot_At_OutOfRange(t *testing.T) {
	s, err := Encode(lowercaseRange(t, "a", "c"))
	require.NoError(t, err)

	_, err = s.At(-1)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	_, err = s.At(3)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestSnapshot_All_EarlyStop(t *testing.T) {
	s, err := Encode(lowercaseRange(t, "a", "z"))
	require.NoError(t, err)

	n := 0
	for range s.All() {
		n++
		if n == 5 {
			break
		}
	}
	require.Equal(t, 5, n)
}

func TestParse_Invalid(t *testing.T) {
	valid, err := Encode(lowercaseRange(t, "a", "c"))
	require.NoError(t, err)
	blob := valid.Bytes()

	corrupt := func(mutate func(b []byte)) []byte {
		b := append([]byte(nil), blob...)
		mutate(b)

		return b
	}

	testCases := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty", nil, errs.ErrInvalidSnapshot},
		{"truncated header", blob[:headerSize-1], errs.ErrInvalidSnapshot},
		{"bad magic", corrupt(func(b []byte) { b[0] = 'X' }), errs.ErrInvalidSnapshot},
		{"bad version", corrupt(func(b []byte) { b[4] = 0xFF }), errs.ErrInvalidSnapshot},
		{"bad kind", corrupt(func(b []byte) { b[5] = 0x7 }), errs.ErrInvalidSnapshot},
		{"bad compression", corrupt(func(b []byte) { b[6] = 0xEE }), errs.ErrUnsupportedCompression},
		{"truncated payload", blob[:len(blob)-1], errs.ErrInvalidSnapshot},
		{"count mismatch", corrupt(func(b []byte) { b[8]++ }), errs.ErrInvalidSnapshot},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.data)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// craftHeader assembles a structurally valid uncompressed header with
// arbitrary count and rawSize fields.
func craftHeader(count, rawSize uint64) []byte {
	b := make([]byte, headerSize)
	copy(b[0:4], magic)
	b[4] = version
	b[5] = byte(format.KindCharacter)
	b[6] = byte(format.CompressionNone)
	binary.LittleEndian.PutUint64(b[8:16], count)
	binary.LittleEndian.PutUint64(b[16:24], rawSize)

	return b
}

func TestParse_CraftedBlobs(t *testing.T) {
	t.Run("huge element count", func(t *testing.T) {
		// A header-only blob claiming 2^61 elements must be rejected, not
		// trusted for pre-allocation.
		_, err := Parse(craftHeader(1<<61, 0))
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("huge length prefix", func(t *testing.T) {
		// A single element whose uvarint length claims 2^63 bytes must fail
		// the bounds check rather than wrap it.
		var prefix [binary.MaxVarintLen64]byte
		n := binary.PutUvarint(prefix[:], 1<<63)

		blob := append(craftHeader(1, uint64(n)), prefix[:n]...)
		_, err := Parse(blob)
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("length prefix just past payload", func(t *testing.T) {
		// Claimed length one byte beyond the payload end.
		var prefix [binary.MaxVarintLen64]byte
		n := binary.PutUvarint(prefix[:], 1)

		blob := append(craftHeader(1, uint64(n)), prefix[:n]...)
		_, err := Parse(blob)
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})
}
