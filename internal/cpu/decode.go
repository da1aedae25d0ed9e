package cpu

// prefixCB is the opcode that selects the extended instruction table.
const prefixCB = 0xCB

// registerTable maps the 3-bit register field of an opcode to its operand.
var registerTable = [8]Operand{
	OperandB, OperandC, OperandD, OperandE, OperandH, OperandL, OperandIndirectHL, OperandA,
}

// pairTable is used by LD rr,d16, INC/DEC rr and ADD HL,rr.
var pairTable = [4]Operand{OperandBC, OperandDE, OperandHL, OperandSP}

// stackTable is used by PUSH and POP.
var stackTable = [4]Operand{OperandBC, OperandDE, OperandHL, OperandAF}

var conditionTable = [4]Condition{NotZero, Zero, NotCarry, Carry}

var aluTable = [8]Kind{ADD, ADC, SUB, SBC, AND, XOR, OR, CP}

var rotateTable = [8]Kind{RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL}

var accumulatorTable = [8]Kind{RLCA, RRCA, RLA, RRA, DAA, CPL, SCF, CCF}

// Decode maps an opcode to its Instruction. When prefixed is set the opcode
// is looked up in the 0xCB table, which has no unassigned slots. The second
// return value is false for opcodes with no mapping in the base table.
func Decode(opcode uint8, prefixed bool) (Instruction, bool) {
	if prefixed {
		return decodeCB(opcode), true
	}
	return decodeBase(opcode)
}

// decodeCB decodes the extended table. The opcode is split into
//
//	xx yyy zzz
//
// where x selects the group, y the rotate kind or bit index and z the
// register.
func decodeCB(opcode uint8) Instruction {
	x, y, z := opcode>>6, opcode>>3&7, opcode&7
	in := Instruction{Target: registerTable[z], Prefixed: true}
	switch x {
	case 0:
		in.Kind = rotateTable[y]
	case 1:
		in.Kind, in.Bit = BIT, y
	case 2:
		in.Kind, in.Bit = RES, y
	default:
		in.Kind, in.Bit = SET, y
	}
	return in
}

func decodeBase(opcode uint8) (Instruction, bool) {
	x, y, z := opcode>>6, opcode>>3&7, opcode&7
	p, q := y>>1, y&1

	switch x {
	case 0: // 0x00 - 0x3F
		switch z {
		case 0:
			switch y {
			case 0:
				return Instruction{Kind: NOP}, true
			case 1: // LD (a16), SP
				return Instruction{Kind: LD16, Target: OperandIndirectA16, Source: OperandSP}, true
			case 2:
				return Instruction{Kind: STOP}, true
			case 3:
				return Instruction{Kind: JR}, true
			default: // JR cc, e8
				return Instruction{Kind: JR, Condition: conditionTable[y-4]}, true
			}
		case 1:
			if q == 0 { // LD rr, d16
				return Instruction{Kind: LD16, Target: pairTable[p], Source: OperandImmediate16}, true
			}
			return Instruction{Kind: ADDHL, Target: OperandHL, Source: pairTable[p]}, true
		case 2:
			indirect := [4]Operand{OperandIndirectBC, OperandIndirectDE, OperandIndirectHLI, OperandIndirectHLD}[p]
			if q == 0 { // LD (rr), A
				return Instruction{Kind: LD, Target: indirect, Source: OperandA}, true
			}
			return Instruction{Kind: LD, Target: OperandA, Source: indirect}, true
		case 3:
			if q == 0 {
				return Instruction{Kind: INC, Target: pairTable[p]}, true
			}
			return Instruction{Kind: DEC, Target: pairTable[p]}, true
		case 4:
			return Instruction{Kind: INC, Target: registerTable[y]}, true
		case 5:
			return Instruction{Kind: DEC, Target: registerTable[y]}, true
		case 6: // LD r, d8
			return Instruction{Kind: LD, Target: registerTable[y], Source: OperandImmediate8}, true
		default:
			return Instruction{Kind: accumulatorTable[y]}, true
		}
	case 1: // 0x40 - 0x7F
		if y == 6 && z == 6 {
			return Instruction{Kind: HALT}, true
		}
		return Instruction{Kind: LD, Target: registerTable[y], Source: registerTable[z]}, true
	case 2: // 0x80 - 0xBF
		return Instruction{Kind: aluTable[y], Target: OperandA, Source: registerTable[z]}, true
	}

	// 0xC0 - 0xFF
	switch z {
	case 0:
		switch y {
		case 4: // LDH (a8), A
			return Instruction{Kind: LD, Target: OperandHighA8, Source: OperandA}, true
		case 5:
			return Instruction{Kind: ADDSP, Target: OperandSP}, true
		case 6: // LDH A, (a8)
			return Instruction{Kind: LD, Target: OperandA, Source: OperandHighA8}, true
		case 7:
			return Instruction{Kind: LDHLSP, Target: OperandHL, Source: OperandSP}, true
		default:
			return Instruction{Kind: RET, Condition: conditionTable[y]}, true
		}
	case 1:
		if q == 0 {
			return Instruction{Kind: POP, Target: stackTable[p]}, true
		}
		switch p {
		case 0:
			return Instruction{Kind: RET}, true
		case 1:
			return Instruction{Kind: RETI}, true
		case 2:
			return Instruction{Kind: JPHL, Source: OperandHL}, true
		default: // LD SP, HL
			return Instruction{Kind: LD16, Target: OperandSP, Source: OperandHL}, true
		}
	case 2:
		switch y {
		case 4: // LD (C), A
			return Instruction{Kind: LD, Target: OperandHighC, Source: OperandA}, true
		case 5: // LD (a16), A
			return Instruction{Kind: LD, Target: OperandIndirectA16, Source: OperandA}, true
		case 6: // LD A, (C)
			return Instruction{Kind: LD, Target: OperandA, Source: OperandHighC}, true
		case 7: // LD A, (a16)
			return Instruction{Kind: LD, Target: OperandA, Source: OperandIndirectA16}, true
		default:
			return Instruction{Kind: JP, Condition: conditionTable[y]}, true
		}
	case 3:
		switch y {
		case 0:
			return Instruction{Kind: JP}, true
		case 6:
			return Instruction{Kind: DI}, true
		case 7:
			return Instruction{Kind: EI}, true
		}
		// 0xCB is the prefix itself, 0xD3, 0xDB, 0xE3 and 0xEB are unassigned
		return Instruction{}, false
	case 4:
		if y < 4 {
			return Instruction{Kind: CALL, Condition: conditionTable[y]}, true
		}
		return Instruction{}, false
	case 5:
		if q == 0 {
			return Instruction{Kind: PUSH, Target: stackTable[p]}, true
		}
		if p == 0 {
			return Instruction{Kind: CALL}, true
		}
		return Instruction{}, false
	case 6: // ALU A, d8
		return Instruction{Kind: aluTable[y], Target: OperandA, Source: OperandImmediate8}, true
	default:
		return Instruction{Kind: RST, Vector: uint16(y) * 8}, true
	}
}
