package cpu

// Flag is the bit position of a condition flag within the F byte.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags holds the four condition flags of the CPU. The low nibble of the
// F byte has no storage and always reads back as zero.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Byte packs the flags into the layout of the F register.
func (f Flags) Byte() uint8 {
	var b uint8
	if f.Zero {
		b |= 1 << FlagZero
	}
	if f.Subtract {
		b |= 1 << FlagSubtract
	}
	if f.HalfCarry {
		b |= 1 << FlagHalfCarry
	}
	if f.Carry {
		b |= 1 << FlagCarry
	}
	return b
}

// FlagsFromByte unpacks an F register byte. Bits 0-3 are discarded.
func FlagsFromByte(b uint8) Flags {
	return Flags{
		Zero:      b&(1<<FlagZero) != 0,
		Subtract:  b&(1<<FlagSubtract) != 0,
		HalfCarry: b&(1<<FlagHalfCarry) != 0,
		Carry:     b&(1<<FlagCarry) != 0,
	}
}

// setFlags sets all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = Flags{Zero: zero, Subtract: subtract, HalfCarry: halfCarry, Carry: carry}
}

// carryBit returns the carry flag as 0 or 1.
func (c *CPU) carryBit() uint8 {
	if c.F.Carry {
		return 1
	}
	return 0
}
