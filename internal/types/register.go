package types

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 7 general registers: A, B, C, D, E, H and L. The flags are
// held separately and only ever exposed as a byte through the AF pair.
type Register = uint8

// Pair is a 16-bit view over two 8-bit registers. A Pair never owns storage
// of its own, the value is always derived from the underlying registers.
type Pair interface {
	Uint16() uint16
	SetUint16(value uint16)
}

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

var _ Pair = (*RegisterPair)(nil)
