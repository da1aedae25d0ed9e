package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// pushStack pushes a 16 bit value onto the stack. The high byte is stored
// at the higher address.
func (c *CPU) pushStack(value uint16) {
	high, low := bits.Split(value)
	c.SP--
	c.bus.Write(c.SP, high)
	c.SP--
	c.bus.Write(c.SP, low)
}

// popStack pops a 16 bit value off the stack.
func (c *CPU) popStack() uint16 {
	low := c.bus.Read(c.SP)
	c.SP++
	high := c.bus.Read(c.SP)
	c.SP++
	return bits.Join(high, low)
}

// condition evaluates a branch condition against the flags.
func (c *CPU) condition(cond Condition) bool {
	switch cond {
	case NotZero:
		return !c.F.Zero
	case Zero:
		return c.F.Zero
	case NotCarry:
		return !c.F.Carry
	case Carry:
		return c.F.Carry
	}
	return true
}

// jumpRelative returns the address reached by adding the signed offset to
// the address of the next instruction.
//
//	JR e
//	e = 8-bit signed immediate value
func jumpRelative(next uint16, offset uint8) uint16 {
	return next + uint16(int8(offset))
}

// call pushes the return address onto the stack and returns the
// address to continue execution at.
//
//	CALL nn
//	RST n
func (c *CPU) call(ret, address uint16) uint16 {
	c.pushStack(ret)
	return address
}

// ret pops the return address off the stack.
//
//	RET
//	RETI
func (c *CPU) ret() uint16 {
	return c.popStack()
}
