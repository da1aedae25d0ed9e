package cpu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// register returns the Register for the given operand, or nil if the
// operand is not one of A, B, C, D, E, H or L.
func (c *CPU) register(op Operand) *types.Register {
	switch op {
	case OperandA:
		return &c.A
	case OperandB:
		return &c.B
	case OperandC:
		return &c.C
	case OperandD:
		return &c.D
	case OperandE:
		return &c.E
	case OperandH:
		return &c.H
	case OperandL:
		return &c.L
	}
	return nil
}

// address resolves an indirect operand to the bus address it refers to.
// (HL+) and (HL-) adjust HL after the address is taken.
func (c *CPU) address(op Operand) (uint16, bool) {
	switch op {
	case OperandIndirectHL:
		return c.HL.Uint16(), true
	case OperandIndirectBC:
		return c.BC.Uint16(), true
	case OperandIndirectDE:
		return c.DE.Uint16(), true
	case OperandIndirectHLI:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl + 1)
		return hl, true
	case OperandIndirectHLD:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl - 1)
		return hl, true
	case OperandIndirectA16:
		return c.immediate16(), true
	case OperandHighA8:
		return 0xFF00 | uint16(c.immediate8()), true
	case OperandHighC:
		return 0xFF00 | uint16(c.C), true
	}
	return 0, false
}

// readByte returns the 8-bit value of the given operand.
func (c *CPU) readByte(op Operand) uint8 {
	if reg := c.register(op); reg != nil {
		return *reg
	}
	if op == OperandImmediate8 {
		return c.immediate8()
	}
	if addr, ok := c.address(op); ok {
		return c.bus.Read(addr)
	}
	c.unsupported(op)
	return 0
}

// writeByte stores an 8-bit value into the given operand.
func (c *CPU) writeByte(op Operand, value uint8) {
	if reg := c.register(op); reg != nil {
		*reg = value
		return
	}
	if addr, ok := c.address(op); ok {
		c.bus.Write(addr, value)
		return
	}
	c.unsupported(op)
}

// modifyByte applies fn to the value of the operand and stores the result.
// Indirect operands are resolved once so (HL) is read and written at the
// same address.
func (c *CPU) modifyByte(op Operand, fn func(uint8) uint8) {
	if reg := c.register(op); reg != nil {
		*reg = fn(*reg)
		return
	}
	if op == OperandIndirectHL {
		addr := c.HL.Uint16()
		c.bus.Write(addr, fn(c.bus.Read(addr)))
		return
	}
	c.unsupported(op)
}

// readWord returns the 16-bit value of the given operand.
func (c *CPU) readWord(op Operand) uint16 {
	switch op {
	case OperandAF:
		return c.AF.Uint16()
	case OperandBC:
		return c.BC.Uint16()
	case OperandDE:
		return c.DE.Uint16()
	case OperandHL:
		return c.HL.Uint16()
	case OperandSP:
		return c.SP
	case OperandImmediate16:
		return c.immediate16()
	}
	c.unsupported(op)
	return 0
}

// writeWord stores a 16-bit value into the given operand.
func (c *CPU) writeWord(op Operand, value uint16) {
	switch op {
	case OperandAF:
		c.AF.SetUint16(value)
	case OperandBC:
		c.BC.SetUint16(value)
	case OperandDE:
		c.DE.SetUint16(value)
	case OperandHL:
		c.HL.SetUint16(value)
	case OperandSP:
		c.SP = value
	case OperandIndirectA16:
		c.bus.WriteWord(c.immediate16(), value)
	default:
		c.unsupported(op)
	}
}
