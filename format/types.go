// Package format defines the shared enum types used across charspan packages.
package format

type (
	SymbolKind      uint8
	CompressionType uint8
)

const (
	KindCharacter SymbolKind = 0x1 // KindCharacter represents Unicode scalar value symbols.
	KindByte      SymbolKind = 0x2 // KindByte represents raw single-byte symbols.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k SymbolKind) String() string {
	switch k {
	case KindCharacter:
		return "Character"
	case KindByte:
		return "Byte"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
