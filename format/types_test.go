package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymbolKind_String(t *testing.T) {
	require.Equal(t, "Character", KindCharacter.String())
	require.Equal(t, "Byte", KindByte.String())
	require.Equal(t, "Unknown", SymbolKind(0xFF).String())
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xFF).String())
}
