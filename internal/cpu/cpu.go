package cpu

import (
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

// Bus is the view of the address bus the CPU executes against.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	WriteWord(address uint16, value uint16)
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	bus Bus

	halted  bool
	stopped bool
	ime     bool

	// state of the instruction being executed
	current  Instruction
	branched bool

	fault error
}

// NewCPU creates a new CPU instance attached to the given bus. All
// registers start zeroed and execution begins at 0x0000.
func NewCPU(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Registers.init()
	return c
}

// Step fetches, decodes and executes a single instruction and returns the
// number of clock cycles it took. While the CPU is halted or stopped no
// instruction is executed and the program counter is held.
//
// A fault leaves the CPU frozen at the faulting instruction, every further
// call returns the same fault.
func (c *CPU) Step() (cycles uint8, err error) {
	if c.fault != nil {
		return 0, c.fault
	}
	if c.halted || c.stopped {
		return 4, nil
	}

	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(types.Fault)
			if !ok {
				panic(r)
			}
			c.fault = f
			cycles, err = 0, f
		}
	}()

	opcode := c.bus.Read(c.PC)
	prefixed := opcode == prefixCB
	if prefixed {
		opcode = c.bus.Read(c.PC + 1)
	}

	instruction, ok := Decode(opcode, prefixed)
	if !ok {
		panic(&DecodeFault{Address: c.PC, Opcode: opcode, Prefixed: prefixed})
	}

	c.current = instruction
	c.branched = false
	c.PC = c.execute(instruction)

	return c.cycles(opcode, instruction), nil
}

// Halted reports whether the CPU is waiting in HALT.
func (c *CPU) Halted() bool {
	return c.halted
}

// Stopped reports whether the CPU is waiting in STOP.
func (c *CPU) Stopped() bool {
	return c.stopped
}

// InterruptsEnabled reports the state of the interrupt master enable flag.
func (c *CPU) InterruptsEnabled() bool {
	return c.ime
}

// Resume wakes the CPU from HALT or STOP, as an interrupt would.
func (c *CPU) Resume() {
	c.halted = false
	c.stopped = false
}

// Faulted reports whether a fault has frozen the CPU.
func (c *CPU) Faulted() bool {
	return c.fault != nil
}

// Err returns the fault that froze the CPU, if any.
func (c *CPU) Err() error {
	return c.fault
}

// Current returns the last instruction the CPU executed.
func (c *CPU) Current() Instruction {
	return c.current
}

// immediate8 reads the byte following the opcode.
func (c *CPU) immediate8() uint8 {
	return c.bus.Read(c.PC + 1)
}

// immediate16 reads the little endian word following the opcode.
func (c *CPU) immediate16() uint16 {
	return uint16(c.bus.Read(c.PC+1)) | uint16(c.bus.Read(c.PC+2))<<8
}

// unsupported raises an InvariantFault for the current instruction.
func (c *CPU) unsupported(operand Operand) {
	panic(&InvariantFault{Address: c.PC, Instruction: c.current, Operand: operand})
}
