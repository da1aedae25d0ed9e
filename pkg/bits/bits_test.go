package bits

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBits(t *testing.T) {
	require.True(t, Test(uint8(Bit7), 7))
	require.False(t, Test(uint8(Bit7), 6))
	require.Equal(t, uint8(0x81), Set(uint8(0x80), 0))
	require.Equal(t, uint8(0x7F), Reset(uint8(0xFF), 7))
	require.Equal(t, uint16(1), Val(uint16(0x8000), 15))
}

func TestJoinSplit(t *testing.T) {
	require.Equal(t, uint16(0xABCD), Join(0xAB, 0xCD))

	hi, lo := Split(0x1234)
	require.Equal(t, uint8(0x12), hi)
	require.Equal(t, uint8(0x34), lo)
}
