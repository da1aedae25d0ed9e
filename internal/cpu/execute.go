package cpu

// execute performs the instruction at the program counter and returns the
// address of the next instruction to execute.
func (c *CPU) execute(in Instruction) uint16 {
	next := c.PC + in.Length()

	switch in.Kind {
	case NOP:
	case HALT:
		c.halted = true
	case STOP:
		c.stopped = true
	case DI:
		c.ime = false
	case EI:
		c.ime = true

	case ADD:
		c.add(c.readByte(in.Source), false)
	case ADC:
		c.add(c.readByte(in.Source), true)
	case SUB:
		c.sub(c.readByte(in.Source), false)
	case SBC:
		c.sub(c.readByte(in.Source), true)
	case AND:
		c.and(c.readByte(in.Source))
	case XOR:
		c.xor(c.readByte(in.Source))
	case OR:
		c.or(c.readByte(in.Source))
	case CP:
		c.compare(c.readByte(in.Source))

	case INC:
		if in.Target.isWord() {
			c.writeWord(in.Target, c.readWord(in.Target)+1)
		} else {
			c.modifyByte(in.Target, c.increment)
		}
	case DEC:
		if in.Target.isWord() {
			c.writeWord(in.Target, c.readWord(in.Target)-1)
		} else {
			c.modifyByte(in.Target, c.decrement)
		}
	case ADDHL:
		c.addHL(c.readWord(in.Source))
	case ADDSP:
		c.SP = c.addSPSigned(c.immediate8())
	case DAA:
		c.decimalAdjust()
	case CPL:
		c.complement()
	case SCF:
		c.setCarryFlag()
	case CCF:
		c.complementCarryFlag()

	case LD:
		c.writeByte(in.Target, c.readByte(in.Source))
	case LD16:
		c.writeWord(in.Target, c.readWord(in.Source))
	case LDHLSP:
		c.HL.SetUint16(c.addSPSigned(c.immediate8()))

	case PUSH:
		c.pushStack(c.readWord(in.Target))
	case POP:
		c.writeWord(in.Target, c.popStack())

	case JP:
		if c.condition(in.Condition) {
			c.branched = true
			return c.immediate16()
		}
	case JPHL:
		return c.readWord(in.Source)
	case JR:
		if c.condition(in.Condition) {
			c.branched = true
			return jumpRelative(next, c.immediate8())
		}
	case CALL:
		if c.condition(in.Condition) {
			c.branched = true
			return c.call(next, c.immediate16())
		}
	case RET:
		if c.condition(in.Condition) {
			c.branched = true
			return c.ret()
		}
	case RETI:
		c.ime = true
		return c.ret()
	case RST:
		return c.call(next, in.Vector)

	case RLCA, RRCA, RLA, RRA:
		c.rotateAccumulator(in.Kind)

	case RLC:
		c.modifyByte(in.Target, c.rotateLeftCarry)
	case RRC:
		c.modifyByte(in.Target, c.rotateRightCarry)
	case RL:
		c.modifyByte(in.Target, c.rotateLeftThroughCarry)
	case RR:
		c.modifyByte(in.Target, c.rotateRightThroughCarry)
	case SLA:
		c.modifyByte(in.Target, c.shiftLeftArithmetic)
	case SRA:
		c.modifyByte(in.Target, c.shiftRightArithmetic)
	case SWAP:
		c.modifyByte(in.Target, c.swap)
	case SRL:
		c.modifyByte(in.Target, c.shiftRightLogical)
	case BIT:
		c.testBit(in.Bit, c.readByte(in.Target))
	case RES:
		c.modifyByte(in.Target, func(n uint8) uint8 { return resetBit(in.Bit, n) })
	case SET:
		c.modifyByte(in.Target, func(n uint8) uint8 { return setBit(in.Bit, n) })

	default:
		c.unsupported(in.Target)
	}

	return next
}
