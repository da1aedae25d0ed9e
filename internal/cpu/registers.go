package cpu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// Registers represents the GB CPU registers. The 16-bit pairs are views
// over the 8-bit registers and have no storage of their own.
type Registers struct {
	A types.Register
	B types.Register
	C types.Register
	D types.Register
	E types.Register
	H types.Register
	L types.Register
	F Flags

	AF types.Pair
	BC types.Pair
	DE types.Pair
	HL types.Pair
}

// NewRegisters returns a zeroed register file with its pairs wired.
func NewRegisters() *Registers {
	r := &Registers{}
	r.init()
	return r
}

// init creates the register pairs. It must be called once the Registers
// have reached their final location in memory.
func (r *Registers) init() {
	r.AF = &accumulatorPair{a: &r.A, f: &r.F}
	r.BC = &types.RegisterPair{High: &r.B, Low: &r.C}
	r.DE = &types.RegisterPair{High: &r.D, Low: &r.E}
	r.HL = &types.RegisterPair{High: &r.H, Low: &r.L}
}

// accumulatorPair is the AF view, the low byte is the packed flags.
type accumulatorPair struct {
	a *types.Register
	f *Flags
}

func (p *accumulatorPair) Uint16() uint16 {
	return uint16(*p.a)<<8 | uint16(p.f.Byte())
}

func (p *accumulatorPair) SetUint16(value uint16) {
	*p.a = uint8(value >> 8)
	*p.f = FlagsFromByte(uint8(value))
}
