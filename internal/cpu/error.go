package cpu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// DecodeFault is raised when the byte at the program counter has no
// instruction mapping.
type DecodeFault struct {
	Address  uint16
	Opcode   uint8
	Prefixed bool
}

func (e *DecodeFault) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("%04x: unknown instruction CB %02X", e.Address, e.Opcode)
	}
	return fmt.Sprintf("%04x: unknown instruction %02X", e.Address, e.Opcode)
}

func (e *DecodeFault) Fault() {}

// InvariantFault is raised when a decoded instruction names an operand its
// operation has no implementation for. It means the decoder and the
// execution engine disagree, never that the emulated program is wrong.
type InvariantFault struct {
	Address     uint16
	Instruction Instruction
	Operand     Operand
}

func (e *InvariantFault) Error() string {
	return fmt.Sprintf("%04x: unsupported operand %q for %s", e.Address, e.Operand, e.Instruction)
}

func (e *InvariantFault) Fault() {}

var (
	_ types.Fault = (*DecodeFault)(nil)
	_ types.Fault = (*InvariantFault)(nil)
)
