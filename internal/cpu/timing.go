package cpu

// baseCycles holds the machine cycles of every unprefixed opcode. For
// conditional branches the value is the cost when the branch is not taken.
// Unassigned opcodes are 0.
var baseCycles = [256]uint8{
	//  0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
	1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1, // 0x00
	1, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1, // 0x10
	2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1, // 0x20
	2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1, // 0x30
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x40
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x50
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x60
	2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1, // 0x70
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x80
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x90
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0xA0
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0xB0
	2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 0, 3, 6, 2, 4, // 0xC0
	2, 3, 3, 0, 3, 4, 2, 4, 2, 4, 3, 0, 3, 0, 2, 4, // 0xD0
	3, 3, 2, 0, 0, 4, 2, 4, 4, 1, 4, 0, 0, 0, 2, 4, // 0xE0
	3, 3, 2, 1, 0, 4, 2, 4, 3, 2, 4, 1, 0, 0, 2, 4, // 0xF0
}

// branchPenalty is the number of extra machine cycles a conditional
// branch costs when it is taken.
var branchPenalty = [...]uint8{
	JR:   1,
	JP:   1,
	CALL: 3,
	RET:  3,
}

// cycles returns the clock cycles consumed by the instruction just executed.
func (c *CPU) cycles(opcode uint8, in Instruction) uint8 {
	var m uint8
	switch {
	case in.Prefixed && in.Target == OperandIndirectHL && in.Kind == BIT:
		m = 3
	case in.Prefixed && in.Target == OperandIndirectHL:
		m = 4
	case in.Prefixed:
		m = 2
	default:
		m = baseCycles[opcode]
		if c.branched && in.Condition != Always && int(in.Kind) < len(branchPenalty) {
			m += branchPenalty[in.Kind]
		}
	}
	return m * 4
}
