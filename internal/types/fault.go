package types

// Fault is implemented by every unrecoverable emulation fault. Faults are
// raised by panicking with the fault value deep inside the bus or the
// execution engine, and are turned back into an error by cpu.CPU.Step.
type Fault interface {
	error
	Fault()
}
