package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// testBit tests bit b of n.
//
//	BIT b, n
//	b = 0 - 7
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(b uint8, n uint8) {
	c.setFlags(!bits.Test(n, b), false, true, c.F.Carry)
}

// resetBit returns n with bit b reset. No flags are affected.
//
//	RES b, n
func resetBit(b uint8, n uint8) uint8 {
	return bits.Reset(n, b)
}

// setBit returns n with bit b set. No flags are affected.
//
//	SET b, n
func setBit(b uint8, n uint8) uint8 {
	return bits.Set(n, b)
}
