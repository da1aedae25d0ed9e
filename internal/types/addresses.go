package types

// Address represents a region of the Game Boy's memory which can be read
// from or written to. The address handed to Read and Write is the offset
// into the region, not the absolute bus address. A nil Read or Write marks
// the region as not readable or not writable.
type Address struct {
	// Read is a function that is called when the CPU reads from
	// the region.
	Read func(offset uint16) uint8
	// Write is a function that is called when the CPU writes to
	// the region.
	Write func(offset uint16, value uint8)
}

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// LCDC is the address of the LCDC hardware register. Only the
	// background tile map select (bit 3) and the tile data select
	// (bit 4) are honoured by the display unit.
	LCDC HardwareAddress = 0xFF40
	// STAT is the address of the STAT hardware register.
	STAT HardwareAddress = 0xFF41
	// SCY is the address of the SCY hardware register, the Y
	// position of the background viewport.
	SCY HardwareAddress = 0xFF42
	// SCX is the address of the SCX hardware register, the X
	// position of the background viewport.
	SCX HardwareAddress = 0xFF43
	// LY is the address of the LY hardware register. It holds
	// the scanline currently being processed (0-153) and is
	// read only.
	LY HardwareAddress = 0xFF44
	// BGP is the address of the BGP hardware register.
	BGP HardwareAddress = 0xFF47
	// BDIS is the address of the boot ROM disable register.
	BDIS HardwareAddress = 0xFF50
	// IE is the address of the interrupt enable register.
	IE HardwareAddress = 0xFFFF
)
