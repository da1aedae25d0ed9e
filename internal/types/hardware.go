package types

// HardwareRegisters is a table of hardware registers mapped into the
// I/O segment. The table is indexed by the address of the hardware
// register ANDed with 0x007F.
type HardwareRegisters [0x80]*HardwareRegister

// RegisterHardware registers a hardware register with the given
// address and read/write functions. Either function may be nil, in
// which case the register is write-only or read-only respectively.
func (h *HardwareRegisters) RegisterHardware(address HardwareAddress, write func(v uint8), read func() uint8) {
	h[address&0x007F] = &HardwareRegister{
		address: address,
		write:   write,
		read:    read,
	}
}

// Lookup returns the hardware register for the given address, or nil
// if none was registered.
func (h *HardwareRegisters) Lookup(address HardwareAddress) *HardwareRegister {
	return h[address&0x007F]
}

// HardwareRegister represents a hardware register of the Game
// Boy. The hardware registers are used to control and
// read the state of the hardware.
type HardwareRegister struct {
	address HardwareAddress
	write   func(v uint8)
	read    func() uint8
}

// Address returns the address the register is mapped at.
func (h *HardwareRegister) Address() HardwareAddress {
	return h.address
}

// Readable reports whether the register has a read function.
func (h *HardwareRegister) Readable() bool {
	return h.read != nil
}

// Read returns the value of the register. It must only be called
// for readable registers.
func (h *HardwareRegister) Read() uint8 {
	return h.read()
}

// Write passes the value to the register's write function, if it
// has one.
func (h *HardwareRegister) Write(value uint8) {
	if h.write != nil {
		h.write(value)
	}
}
