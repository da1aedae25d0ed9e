package mmu

import (
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
)

// Segment is one of the fixed ranges of the address space.
type Segment uint8

const (
	// BootROM is the boot code, 0x0000 - 0x00FF.
	BootROM Segment = iota
	// CartridgeROM is the cartridge code, 0x0100 - 0x7FFF.
	CartridgeROM
	// VideoRAM is the video memory owned by the PPU, 0x8000 - 0x9FFF.
	VideoRAM
	// CartridgeRAM is the external cartridge memory, 0xA000 - 0xBFFF.
	CartridgeRAM
	// WorkRAM is the working memory, 0xC000 - 0xFDFF.
	WorkRAM
	// OAM is the sprite attribute memory owned by the PPU, 0xFE00 - 0xFE9F.
	OAM
	// IO holds the hardware registers, 0xFF00 - 0xFF7F.
	IO
	// HighRAM is the high memory, 0xFF80 - 0xFFFF.
	HighRAM
	// Unusable is the gap between OAM and IO, 0xFEA0 - 0xFEFF. It belongs
	// to none of the other segments and is never backed.
	Unusable

	segmentCount
)

var segmentBounds = [segmentCount]struct{ start, end uint16 }{
	BootROM:      {0x0000, 0x00FF},
	CartridgeROM: {0x0100, 0x7FFF},
	VideoRAM:     {0x8000, 0x9FFF},
	CartridgeRAM: {0xA000, 0xBFFF},
	WorkRAM:      {0xC000, 0xFDFF},
	OAM:          {0xFE00, 0xFE9F},
	Unusable:     {0xFEA0, 0xFEFF},
	IO:           {0xFF00, 0xFF7F},
	HighRAM:      {0xFF80, 0xFFFF},
}

var segmentNames = [segmentCount]string{
	BootROM:      "boot ROM",
	CartridgeROM: "cartridge ROM",
	VideoRAM:     "video RAM",
	CartridgeRAM: "cartridge RAM",
	WorkRAM:      "work RAM",
	OAM:          "OAM",
	IO:           "IO",
	HighRAM:      "high RAM",
	Unusable:     "unusable",
}

const (
	// BootROMSize is the size of the boot ROM.
	BootROMSize = 0x100
	// CartridgeROMSize is the size of the unbanked cartridge ROM,
	// including the part overlaid by the boot ROM.
	CartridgeROMSize = 0x8000

	vramSize = 0x2000
	oamSize  = 0xA0
)

// the segments the PPU backs must match the stores it allocates
var (
	_ [ppu.VRAMSize - vramSize]struct{}
	_ [vramSize - ppu.VRAMSize]struct{}
	_ [ppu.OAMSize - oamSize]struct{}
	_ [oamSize - ppu.OAMSize]struct{}
)

// Start returns the first address of the segment.
func (s Segment) Start() uint16 {
	return segmentBounds[s].start
}

// End returns the last address of the segment.
func (s Segment) End() uint16 {
	return segmentBounds[s].end
}

// Size returns the number of addresses in the segment.
func (s Segment) Size() int {
	return int(s.End()) - int(s.Start()) + 1
}

func (s Segment) String() string {
	if s < segmentCount {
		return segmentNames[s]
	}
	return "invalid"
}

// Classify returns the segment an address belongs to, and the offset of
// the address within it.
func Classify(address uint16) (Segment, uint16) {
	var s Segment
	switch {
	case address <= 0x00FF:
		s = BootROM
	case address <= 0x7FFF:
		s = CartridgeROM
	case address <= 0x9FFF:
		s = VideoRAM
	case address <= 0xBFFF:
		s = CartridgeRAM
	case address <= 0xFDFF:
		s = WorkRAM
	case address <= 0xFE9F:
		s = OAM
	case address <= 0xFEFF:
		s = Unusable
	case address <= 0xFF7F:
		s = IO
	default:
		s = HighRAM
	}
	return s, address - s.Start()
}
