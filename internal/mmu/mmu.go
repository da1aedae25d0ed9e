// Package mmu provides the address bus of the Game Boy. The 16-bit
// address space is split into fixed segments, each backed by its own
// storage. Video memory and OAM are owned by the PPU, the bus only
// holds handles to them.
package mmu

import (
	"github.com/pkg/errors"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/bits"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// Storage is memory owned by another component that the bus delegates
// a segment to. Offsets are relative to the start of the segment.
type Storage interface {
	Read(offset uint16) uint8
	Write(offset uint16, value uint8)
}

// Bus is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the 64kB address space. Accesses a segment
// does not allow raise an AccessFault.
type Bus struct {
	// one entry per segment, a nil function marks the access as illegal
	segments [segmentCount]types.Address

	// 0x0000 - 0x00FF - BOOT ROM (256B)
	bootROM      [BootROMSize]uint8
	bootDisabled bool

	// 0x0000 - 0x7FFF - ROM (32kB)
	cartROM [CartridgeROMSize]uint8

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	vram, oam Storage

	// 0xA000 - 0xBFFF - External RAM (8kB)
	cartRAM [0x2000]uint8

	// 0xC000 - 0xFDFF - Work RAM (15.5kB)
	wRAM [0x3E00]uint8

	// 0xFF00 - 0xFF7F - I/O Registers
	io        [0x80]uint8
	registers types.HardwareRegisters

	// 0xFF80 - 0xFFFF - High RAM (128B), including IE
	hRAM [0x80]uint8

	policy AccessPolicy

	Log log.Logger
}

// New returns a new Bus with the given boot ROM mapped at 0x0000. The
// boot ROM must be exactly BootROMSize bytes.
func New(boot []byte, vram, oam Storage, opts ...Opt) (*Bus, error) {
	if len(boot) != BootROMSize {
		return nil, errors.Wrapf(ErrBootROMSize, "got %d bytes, expected %d", len(boot), BootROMSize)
	}

	b := &Bus{
		vram: vram,
		oam:  oam,
		Log:  log.NewNullLogger(),
	}
	copy(b.bootROM[:], boot)
	for _, opt := range opts {
		opt(b)
	}
	b.init()

	b.Log.Debugf("mmu: boot ROM loaded, %s access policy", b.policy)
	return b, nil
}

func (b *Bus) init() {
	// writing anything to BDIS unmaps the boot ROM
	b.registers.RegisterHardware(types.BDIS, func(v uint8) {
		if !b.bootDisabled {
			b.Log.Debugf("mmu: boot ROM disabled")
		}
		b.bootDisabled = true
	}, nil)

	b.segments = [segmentCount]types.Address{
		BootROM:      {Read: b.readBoot},
		CartridgeROM: {Read: readOffset(b.readCart, CartridgeROM.Start())},
		VideoRAM:     {Read: b.vram.Read, Write: b.vram.Write},
		CartridgeRAM: {Write: func(offset uint16, value uint8) { b.cartRAM[offset] = value }},
		WorkRAM:      {Read: func(offset uint16) uint8 { return b.wRAM[offset] }, Write: func(offset uint16, value uint8) { b.wRAM[offset] = value }},
		OAM:          {Read: b.oam.Read, Write: b.oam.Write},
		IO:           {Write: b.writeIO},
		HighRAM:      {Write: func(offset uint16, value uint8) { b.hRAM[offset] = value }},
	}

	if b.policy == Permissive {
		b.segments[CartridgeRAM].Read = func(offset uint16) uint8 { return b.cartRAM[offset] }
		b.segments[IO].Read = b.readIO
		b.segments[HighRAM].Read = func(offset uint16) uint8 { return b.hRAM[offset] }
		b.segments[Unusable] = types.Address{
			Read:  func(uint16) uint8 { return 0xFF },
			Write: func(uint16, uint8) {},
		}
	}
}

// readOffset returns a read function that adds base to the offset.
func readOffset(read func(uint16) uint8, base uint16) func(uint16) uint8 {
	return func(offset uint16) uint8 {
		return read(offset + base)
	}
}

func (b *Bus) readCart(address uint16) uint8 {
	return b.cartROM[address]
}

// readBoot reads the boot ROM, or the start of the cartridge once the
// boot ROM has been disabled.
func (b *Bus) readBoot(offset uint16) uint8 {
	if b.bootDisabled {
		return b.readCart(offset)
	}
	return b.bootROM[offset]
}

func (b *Bus) readIO(offset uint16) uint8 {
	if reg := b.registers.Lookup(0xFF00 + offset); reg != nil && reg.Readable() {
		return reg.Read()
	}
	return b.io[offset]
}

func (b *Bus) writeIO(offset uint16, value uint8) {
	b.io[offset] = value
	if reg := b.registers.Lookup(0xFF00 + offset); reg != nil {
		reg.Write(value)
	}
}

// Read returns the value at the given address.
func (b *Bus) Read(address uint16) uint8 {
	segment, offset := Classify(address)
	read := b.segments[segment].Read
	if read == nil {
		panic(&AccessFault{Address: address, Segment: segment})
	}
	return read(offset)
}

// Write writes the value to the given address.
func (b *Bus) Write(address uint16, value uint8) {
	segment, offset := Classify(address)
	write := b.segments[segment].Write
	if write == nil {
		panic(&AccessFault{Address: address, Segment: segment, Write: true})
	}
	write(offset, value)
}

// WriteWord writes the low byte of value to address and the high byte
// to address+1. The second address wraps around to 0x0000.
func (b *Bus) WriteWord(address uint16, value uint16) {
	high, low := bits.Split(value)
	b.Write(address, low)
	b.Write(address+1, high)
}

// RegisterHardware maps a hardware register into the IO segment. Writes
// to the register are also stored in the IO segment.
func (b *Bus) RegisterHardware(address types.HardwareAddress, write func(v uint8), read func() uint8) {
	b.registers.RegisterHardware(address, write, read)
}

// LoadCartridge copies the cartridge into the cartridge ROM. Bank
// switching is not supported, so the cartridge must fit in 32kB.
func (b *Bus) LoadCartridge(rom []byte) error {
	if len(rom) > CartridgeROMSize {
		return errors.Wrapf(ErrCartridgeSize, "%d bytes exceeds %d", len(rom), CartridgeROMSize)
	}
	b.cartROM = [CartridgeROMSize]uint8{}
	copy(b.cartROM[:], rom)
	b.Log.Debugf("mmu: loaded %d byte cartridge", len(rom))
	return nil
}

// BootROMDisabled reports whether the boot ROM has been unmapped.
func (b *Bus) BootROMDisabled() bool {
	return b.bootDisabled
}

// Policy returns the access policy of the bus.
func (b *Bus) Policy() AccessPolicy {
	return b.policy
}
