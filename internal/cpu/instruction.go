package cpu

import "fmt"

// Kind identifies the operation an Instruction performs.
type Kind uint8

const (
	NOP Kind = iota
	HALT
	STOP
	DI
	EI

	// 8-bit arithmetic/logic against the accumulator
	ADD
	ADC
	SUB
	SBC
	AND
	XOR
	OR
	CP

	INC
	DEC
	ADDHL
	ADDSP
	DAA
	CPL
	SCF
	CCF

	// loads
	LD     // 8-bit
	LD16   // 16-bit
	LDHLSP // HL = SP + e8

	PUSH
	POP

	JP
	JPHL
	JR
	CALL
	RET
	RETI
	RST

	// accumulator rotates
	RLCA
	RRCA
	RLA
	RRA

	// CB prefixed
	RLC
	RRC
	RL
	RR
	SLA
	SRA
	SWAP
	SRL
	BIT
	RES
	SET
)

var kindNames = [...]string{
	NOP: "NOP", HALT: "HALT", STOP: "STOP", DI: "DI", EI: "EI",
	ADD: "ADD", ADC: "ADC", SUB: "SUB", SBC: "SBC", AND: "AND", XOR: "XOR", OR: "OR", CP: "CP",
	INC: "INC", DEC: "DEC", ADDHL: "ADD", ADDSP: "ADD", DAA: "DAA", CPL: "CPL", SCF: "SCF", CCF: "CCF",
	LD: "LD", LD16: "LD", LDHLSP: "LD",
	PUSH: "PUSH", POP: "POP",
	JP: "JP", JPHL: "JP", JR: "JR", CALL: "CALL", RET: "RET", RETI: "RETI", RST: "RST",
	RLCA: "RLCA", RRCA: "RRCA", RLA: "RLA", RRA: "RRA",
	RLC: "RLC", RRC: "RRC", RL: "RL", RR: "RR", SLA: "SLA", SRA: "SRA", SWAP: "SWAP", SRL: "SRL",
	BIT: "BIT", RES: "RES", SET: "SET",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Operand is a concrete source or target of an instruction.
type Operand uint8

const (
	OperandNone Operand = iota

	OperandA
	OperandB
	OperandC
	OperandD
	OperandE
	OperandH
	OperandL

	OperandIndirectHL  // (HL)
	OperandIndirectBC  // (BC)
	OperandIndirectDE  // (DE)
	OperandIndirectHLI // (HL+)
	OperandIndirectHLD // (HL-)
	OperandIndirectA16 // (a16)
	OperandHighA8      // (0xFF00+a8)
	OperandHighC       // (0xFF00+C)
	OperandImmediate8  // d8
	OperandImmediate16 // d16

	OperandAF
	OperandBC
	OperandDE
	OperandHL
	OperandSP
)

var operandNames = [...]string{
	OperandNone: "",
	OperandA:    "A", OperandB: "B", OperandC: "C", OperandD: "D", OperandE: "E", OperandH: "H", OperandL: "L",
	OperandIndirectHL:  "(HL)",
	OperandIndirectBC:  "(BC)",
	OperandIndirectDE:  "(DE)",
	OperandIndirectHLI: "(HL+)",
	OperandIndirectHLD: "(HL-)",
	OperandIndirectA16: "(a16)",
	OperandHighA8:      "(a8)",
	OperandHighC:       "(C)",
	OperandImmediate8:  "d8",
	OperandImmediate16: "d16",
	OperandAF:          "AF", OperandBC: "BC", OperandDE: "DE", OperandHL: "HL", OperandSP: "SP",
}

func (o Operand) String() string {
	if int(o) < len(operandNames) {
		return operandNames[o]
	}
	return fmt.Sprintf("Operand(%d)", uint8(o))
}

// isWord reports whether the operand names a 16-bit register.
func (o Operand) isWord() bool {
	return o >= OperandAF && o <= OperandSP
}

// immediateBytes returns the number of operand bytes the operand occupies
// after the opcode.
func (o Operand) immediateBytes() uint16 {
	switch o {
	case OperandImmediate8, OperandHighA8:
		return 1
	case OperandImmediate16, OperandIndirectA16:
		return 2
	}
	return 0
}

// Condition is the flag test applied by conditional jumps, calls and returns.
type Condition uint8

const (
	Always Condition = iota
	NotZero
	Zero
	NotCarry
	Carry
)

var conditionNames = [...]string{Always: "", NotZero: "NZ", Zero: "Z", NotCarry: "NC", Carry: "C"}

func (c Condition) String() string {
	if int(c) < len(conditionNames) {
		return conditionNames[c]
	}
	return fmt.Sprintf("Condition(%d)", uint8(c))
}

// Instruction is a decoded opcode. It is a plain value, decoding never
// touches the CPU or the bus, and the operand bytes following the opcode
// are only read when the instruction is executed.
type Instruction struct {
	Kind      Kind
	Target    Operand
	Source    Operand
	Condition Condition
	// Bit is the bit index used by BIT, RES and SET.
	Bit uint8
	// Vector is the jump target of RST.
	Vector uint16
	// Prefixed is set for instructions from the 0xCB table.
	Prefixed bool
}

// Length returns the encoded length of the instruction in bytes, including
// the prefix byte and any immediate operands.
func (i Instruction) Length() uint16 {
	if i.Prefixed {
		return 2
	}
	switch i.Kind {
	case JP, CALL:
		return 3
	case JR, ADDSP, LDHLSP, STOP:
		return 2
	}
	return 1 + i.Target.immediateBytes() + i.Source.immediateBytes()
}

func (i Instruction) String() string {
	name := i.Kind.String()
	switch i.Kind {
	case ADD, ADC, SUB, SBC, AND, XOR, OR, CP:
		return fmt.Sprintf("%s A, %s", name, i.Source)
	case ADDHL:
		return fmt.Sprintf("ADD HL, %s", i.Source)
	case ADDSP:
		return "ADD SP, e8"
	case LDHLSP:
		return "LD HL, SP+e8"
	case LD, LD16:
		return fmt.Sprintf("LD %s, %s", i.Target, i.Source)
	case INC, DEC, PUSH, POP, RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL:
		return fmt.Sprintf("%s %s", name, i.Target)
	case BIT, RES, SET:
		return fmt.Sprintf("%s %d, %s", name, i.Bit, i.Target)
	case JP, JR, CALL:
		operand := "a16"
		if i.Kind == JR {
			operand = "e8"
		}
		if i.Condition != Always {
			return fmt.Sprintf("%s %s, %s", name, i.Condition, operand)
		}
		return fmt.Sprintf("%s %s", name, operand)
	case JPHL:
		return "JP HL"
	case RET:
		if i.Condition != Always {
			return fmt.Sprintf("RET %s", i.Condition)
		}
	case RST:
		return fmt.Sprintf("RST %02Xh", i.Vector)
	}
	return name
}
