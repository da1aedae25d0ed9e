package gameboy

import (
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu/palette"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance before its components are created.
type Opt func(gb *GameBoy)

// Debug logs every executed instruction.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.debug = true
	}
}

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithAccessPolicy sets the access policy of the address bus.
func WithAccessPolicy(policy mmu.AccessPolicy) Opt {
	return func(gb *GameBoy) {
		gb.accessPolicy = policy
	}
}

// WithTimingPolicy sets the timing policy of the PPU.
func WithTimingPolicy(policy ppu.TimingPolicy) Opt {
	return func(gb *GameBoy) {
		gb.timingPolicy = policy
	}
}

// WithPalette sets the palette the PPU renders with.
func WithPalette(p palette.Palette) Opt {
	return func(gb *GameBoy) {
		gb.palette = p
	}
}

// WithCartridge loads the cartridge ROM, which is mapped from 0x0100
// and replaces the boot ROM once it is disabled.
func WithCartridge(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.cartridge = rom
	}
}
