// Package ppu implements the display timing unit. It owns the video and
// sprite attribute memory, steps through the four LCD modes on a cycle
// budget and renders the background one scanline at a time.
package ppu

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomeboy-core/internal/ppu/lcd"
	"github.com/thelolagemann/gomeboy-core/internal/ppu/palette"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144

	// VRAMSize is the size of the video memory (0x8000 - 0x9FFF).
	VRAMSize = 0x2000
	// OAMSize is the size of the sprite attribute memory (0xFE00 - 0xFE9F).
	OAMSize = 0xA0

	// lastLine is the index of the final line of the vertical blank.
	lastLine = 153
)

// HardwareBus is the part of the address bus the PPU registers its
// hardware registers with.
type HardwareBus interface {
	RegisterHardware(address types.HardwareAddress, write func(v uint8), read func() uint8)
}

// PPU implements the Game Boy's (P)ixel (P)rocessing (U)nit.
//
// References:
//   - [Pan Docs](https://gbdev.io/pandocs/Graphics.html)
//   - [Hacktix GBEDG](https://hacktix.github.io/GBEDG/ppu/)
type PPU struct {
	lcdc *lcd.Controller

	mode  lcd.Mode
	clock uint32 // cycles elapsed in the current mode
	line  uint8  // current line (0-153)

	// Scroll registers
	scy, scx uint8 // Background viewport position

	vram *Memory
	oam  *Memory

	// decoded tiles, bank 0 is addressed from 0x9000 with a signed
	// index, bank 1 from 0x8000 with an unsigned index
	tiles     [2][256]Tile
	tileDirty [tileCount]bool
	dirty     bool

	palette palette.Palette
	pixels  [ScreenWidth * ScreenHeight]uint32

	frame  bool
	policy TimingPolicy
}

// New creates a PPU in the OAM scan mode on line 0, with zeroed video
// memory and pixel buffer.
func New(opts ...Opt) *PPU {
	p := &PPU{
		lcdc:    lcd.NewController(),
		mode:    lcd.OAM,
		palette: palette.Greyscale,
		policy:  RemainderCarry,
	}
	p.vram = newMemory(VRAMSize, p.markTile)
	p.oam = newMemory(OAMSize, nil)

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AttachRegisters registers the display hardware registers with the bus.
func (p *PPU) AttachRegisters(b HardwareBus) {
	b.RegisterHardware(types.LCDC, p.SetControl, p.Control)
	b.RegisterHardware(types.SCY, p.SetScrollY, func() uint8 { return p.scy })
	b.RegisterHardware(types.SCX, p.SetScrollX, func() uint8 { return p.scx })
	b.RegisterHardware(types.LY, nil, p.Line)
	b.RegisterHardware(types.STAT, nil, func() uint8 {
		return 0x80 | uint8(p.mode)
	})
}

// Tick advances the PPU by the given number of clock cycles. Every mode
// transition that is due is performed, with the surplus carried into the
// next mode. Under the ResetToZero policy at most one transition happens
// per call and the surplus is dropped.
func (p *PPU) Tick(cycles uint32) {
	p.clock += cycles
	for p.clock >= p.mode.Duration() {
		if p.policy == ResetToZero {
			p.clock = 0
			p.step()
			return
		}
		p.clock -= p.mode.Duration()
		p.step()
	}
}

// step performs a single mode transition.
func (p *PPU) step() {
	switch p.mode {
	case lcd.OAM:
		p.mode = lcd.VRAM
	case lcd.VRAM:
		p.mode = lcd.HBlank
		p.renderScanline()
	case lcd.HBlank:
		p.line++
		if p.line == ScreenHeight {
			p.mode = lcd.VBlank
			p.frame = true
		} else {
			p.mode = lcd.OAM
		}
	case lcd.VBlank:
		p.line++
		if p.line > lastLine {
			p.line = 0
			p.mode = lcd.OAM
		}
	}
}

// Mode returns the current LCD mode.
func (p *PPU) Mode() lcd.Mode {
	return p.mode
}

// Line returns the current line (LY).
func (p *PPU) Line() uint8 {
	return p.line
}

// Clock returns the number of cycles spent in the current mode.
func (p *PPU) Clock() uint32 {
	return p.clock
}

// SetControl writes the LCD control register.
func (p *PPU) SetControl(v uint8) {
	p.lcdc.Write(v)
}

// Control returns the LCD control register.
func (p *PPU) Control() uint8 {
	return p.lcdc.Read()
}

// SetScrollY sets the Y position of the background viewport.
func (p *PPU) SetScrollY(v uint8) {
	p.scy = v
}

// SetScrollX sets the X position of the background viewport.
func (p *PPU) SetScrollX(v uint8) {
	p.scx = v
}

// VRAM returns the video memory. Writes through the handle invalidate
// the affected tiles.
func (p *PPU) VRAM() *Memory {
	return p.vram
}

// OAM returns the sprite attribute memory.
func (p *PPU) OAM() *Memory {
	return p.oam
}

// PixelBuffer returns the pixel buffer, one packed 0x00RRGGBB colour per
// pixel in row major order. Lines not yet rendered in the current frame
// hold the previous frame's content.
func (p *PPU) PixelBuffer() *[ScreenWidth * ScreenHeight]uint32 {
	return &p.pixels
}

// HasFrame reports whether a frame was completed since the last call to
// ClearFrame.
func (p *PPU) HasFrame() bool {
	return p.frame
}

// ClearFrame resets the frame completion flag.
func (p *PPU) ClearFrame() {
	p.frame = false
}

// Checksum returns a digest of the pixel buffer.
func (p *PPU) Checksum() uint64 {
	var buf [ScreenWidth * ScreenHeight * 4]byte
	for i, px := range p.pixels {
		binary.LittleEndian.PutUint32(buf[i*4:], px)
	}
	return xxhash.Sum64(buf[:])
}
