// Package snapshot materializes a range into a compact binary blob.
//
// A snapshot stores every element of a range as a length-prefixed byte
// string behind a fixed 24-byte header, optionally compressed with Zstd,
// S2 or LZ4. It trades the range's O(1) memory for O(1) element access and
// a representation that can be cached or shipped between processes without
// re-deriving the alphabet.
//
// # Layout
//
//	offset  size  field
//	0       4     magic "CSPN"
//	4       1     version (currently 1)
//	5       1     symbol kind (format.SymbolKind)
//	6       1     compression (format.CompressionType)
//	7       1     reserved, zero
//	8       8     element count, little-endian uint64
//	16      8     uncompressed payload size, little-endian uint64
//	24      ...   payload: per element, uvarint byte length + bytes
//
// Character elements are stored UTF-8 encoded; byte elements are stored
// raw.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/arloliu/charspan/alphabet"
	"github.com/arloliu/charspan/compress"
	"github.com/arloliu/charspan/errs"
	"github.com/arloliu/charspan/format"
	"github.com/arloliu/charspan/internal/options"
	"github.com/arloliu/charspan/internal/pool"
	"github.com/arloliu/charspan/span"
)

const (
	headerSize = 24
	version    = 1
)

var magic = []byte{'C', 'S', 'P', 'N'}

type encoderConfig struct {
	compression format.CompressionType
}

// Option represents a functional option for configuring Encode.
type Option = options.Option[*encoderConfig]

// WithCompression selects the compression applied to the snapshot payload.
// The default is format.CompressionNone.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *encoderConfig) error {
		if _, err := compress.GetCodec(c); err != nil {
			return fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, c)
		}
		cfg.compression = c

		return nil
	})
}

// Snapshot is a parsed, immutable materialized range. It is safe for
// concurrent use.
type Snapshot struct {
	raw         []byte
	kind        format.SymbolKind
	compression format.CompressionType
	elems       [][]byte
}

// Encode enumerates the range and assembles a snapshot of every element.
//
// The range is exhausted exactly once. Ranges over large alphabets can be
// astronomically long; callers are expected to bound the range before
// materializing it.
//
// Parameters:
//   - r: The range to materialize.
//   - opts: Optional configuration, currently WithCompression.
//
// Returns:
//   - *Snapshot: The assembled snapshot.
//   - error: errs.ErrUnsupportedCompression for an unknown compression
//     type, or a codec failure.
func Encode[S alphabet.Symbol](r *span.Range[S], opts ...Option) (*Snapshot, error) {
	cfg := encoderConfig{compression: format.CompressionNone}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, cfg.compression)
	}

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	var scratch [binary.MaxVarintLen64]byte
	count := uint64(0)
	for elem := range r.All() {
		encoded := symbolsToBytes(elem)
		n := binary.PutUvarint(scratch[:], uint64(len(encoded)))
		buf.Grow(n + len(encoded))
		buf.MustWrite(scratch[:n])
		buf.MustWrite(encoded)
		count++
	}

	rawSize := uint64(buf.Len())
	payload, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress snapshot payload: %w", err)
	}

	data := make([]byte, headerSize+len(payload))
	copy(data[0:4], magic)
	data[4] = version
	data[5] = byte(alphabet.KindOf[S]())
	data[6] = byte(cfg.compression)
	binary.LittleEndian.PutUint64(data[8:16], count)
	binary.LittleEndian.PutUint64(data[16:24], rawSize)
	copy(data[headerSize:], payload)

	// Parsing the assembled blob reuses the structural validation path and
	// indexes the elements for access.
	return Parse(data)
}

// Parse validates snapshot data and indexes its elements.
//
// The payload is decompressed and structurally validated up front, so the
// accessors and iterators of the returned Snapshot cannot fail.
//
// Returns:
//   - *Snapshot: The parsed snapshot.
//   - error: errs.ErrInvalidSnapshot for truncated or corrupted data,
//     errs.ErrUnsupportedCompression for an unknown compression type.
func Parse(data []byte) (*Snapshot, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes, want at least %d", errs.ErrInvalidSnapshot, len(data), headerSize)
	}
	if !bytes.Equal(data[0:4], magic) {
		return nil, fmt.Errorf("%w: bad magic", errs.ErrInvalidSnapshot)
	}
	if data[4] != version {
		return nil, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidSnapshot, data[4])
	}

	kind := format.SymbolKind(data[5])
	if kind != format.KindCharacter && kind != format.KindByte {
		return nil, fmt.Errorf("%w: unknown symbol kind %d", errs.ErrInvalidSnapshot, data[5])
	}

	compression := format.CompressionType(data[6])
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedCompression, data[6])
	}

	count := binary.LittleEndian.Uint64(data[8:16])
	rawSize := binary.LittleEndian.Uint64(data[16:24])

	payload, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidSnapshot, err)
	}
	if uint64(len(payload)) != rawSize {
		return nil, fmt.Errorf("%w: payload size %d, header claims %d", errs.ErrInvalidSnapshot, len(payload), rawSize)
	}

	// Every element costs at least one prefix byte, so the payload length
	// bounds the element count; the header count is untrusted until the walk
	// confirms it.
	elems := make([][]byte, 0, min(count, uint64(len(payload))))
	for offset := 0; offset < len(payload); {
		length, n := binary.Uvarint(payload[offset:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: bad element length prefix at offset %d", errs.ErrInvalidSnapshot, offset)
		}
		offset += n

		// Compare in uint64 space: a crafted length near 2^64 would wrap a
		// signed offset+length sum past the bounds check.
		if length > uint64(len(payload)-offset) {
			return nil, fmt.Errorf("%w: element length %d overruns payload at offset %d", errs.ErrInvalidSnapshot, length, offset)
		}
		end := offset + int(length)

		elems = append(elems, payload[offset:end])
		offset = end
	}

	if uint64(len(elems)) != count {
		return nil, fmt.Errorf("%w: %d elements, header claims %d", errs.ErrInvalidSnapshot, len(elems), count)
	}

	return &Snapshot{
		raw:         data,
		kind:        kind,
		compression: compression,
		elems:       elems,
	}, nil
}

// Bytes returns the full snapshot blob, header included.
func (s *Snapshot) Bytes() []byte { return s.raw }

// Count returns the number of elements the snapshot holds.
func (s *Snapshot) Count() int { return len(s.elems) }

// Kind returns the symbol kind of the materialized range.
func (s *Snapshot) Kind() format.SymbolKind { return s.kind }

// Compression returns the payload compression type.
func (s *Snapshot) Compression() format.CompressionType { return s.compression }

// At returns the i-th element in O(1). The returned slice shares the
// snapshot's decoded payload; callers must not modify it.
func (s *Snapshot) At(i int) ([]byte, error) {
	if i < 0 || i >= len(s.elems) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", errs.ErrIndexOutOfRange, i, len(s.elems))
	}

	return s.elems[i], nil
}

// All returns an iterator over (index, element) pairs in range order.
// Yielded slices share the snapshot's decoded payload; callers must not
// modify them.
func (s *Snapshot) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for i, elem := range s.elems {
			if !yield(i, elem) {
				return
			}
		}
	}
}

// Strings returns an iterator over (index, element) pairs with each
// element converted to a string. For character snapshots the elements are
// UTF-8; for byte snapshots the string carries the raw bytes.
func (s *Snapshot) Strings() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, elem := range s.elems {
			if !yield(i, string(elem)) {
				return
			}
		}
	}
}

// symbolsToBytes renders one range element to its stored byte form.
func symbolsToBytes[S alphabet.Symbol](elem []S) []byte {
	if alphabet.KindOf[S]() == format.KindByte {
		out := make([]byte, len(elem))
		for i, sym := range elem {
			out[i] = byte(sym)
		}

		return out
	}

	out := make([]byte, 0, len(elem))
	for _, sym := range elem {
		out = utf8.AppendRune(out, rune(sym))
	}

	return out
}
