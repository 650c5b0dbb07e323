// Package hash computes stable identifiers for alphabet geometry.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Geometry computes the xxHash64 fingerprint of an alphabet's interval
// geometry. The pairs slice holds the (start, end) codepoints of each
// interval in list order; kind distinguishes character maps from byte maps
// so identical geometry over different symbol kinds hashes differently.
func Geometry(kind uint8, pairs [][2]uint32) uint64 {
	d := xxhash.New()

	var buf [8]byte
	_, _ = d.Write([]byte{kind})
	for _, p := range pairs {
		binary.LittleEndian.PutUint32(buf[:4], p[0])
		binary.LittleEndian.PutUint32(buf[4:], p[1])
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
