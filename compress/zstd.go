package compress

// ZstdCompressor favors compression ratio over speed, suited to archived
// snapshots of large ranges.
//
// Two implementations exist behind the same type: a pure-Go one
// (klauspost/compress/zstd, the default) and a cgo one backed by libzstd
// (valyala/gozstd, enabled with -tags cgo_zstd).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstandard compressor with default
// settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
