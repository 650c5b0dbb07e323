package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; the compressor keeps
// internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// Leading flag byte of an LZ4 payload. CompressBlock signals incompressible
// input by writing zero bytes, so such payloads are stored raw behind the
// flag instead.
const (
	lz4FlagRaw   = 0x0
	lz4FlagBlock = 0x1
)

// LZ4Compressor favors decompression speed, suited to snapshots that are
// decoded far more often than they are produced.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 block compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data as a single flagged LZ4 block,
// falling back to raw storage when the data is incompressible.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, 1+lz4.CompressBlockBound(len(data)))
	dst[0] = lz4FlagBlock

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[1:])
	if err != nil {
		return nil, err
	}
	if n == 0 {
		raw := make([]byte, 1+len(data))
		raw[0] = lz4FlagRaw
		copy(raw[1:], data)

		return raw, nil
	}

	return dst[:1+n], nil
}

// Decompress decompresses a single flagged LZ4 block.
//
// The block format does not record the decompressed size, so the buffer
// starts at 4x the compressed size and doubles on every short-buffer error
// up to a 128MB safety limit.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	switch data[0] {
	case lz4FlagRaw:
		out := make([]byte, len(data)-1)
		copy(out, data[1:])

		return out, nil
	case lz4FlagBlock:
	default:
		return nil, fmt.Errorf("unknown lz4 payload flag 0x%x", data[0])
	}

	block := data[1:]
	bufSize := max(len(block)*4, 64)
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(block, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	// Exceeding maxSize means corrupted data or an absurd expansion ratio.
	return nil, lz4.ErrInvalidSourceShortBuffer
}
