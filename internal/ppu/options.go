package ppu

import "github.com/thelolagemann/gomeboy-core/internal/ppu/palette"

// TimingPolicy selects what happens to the cycles that exceed the length
// of a mode when it ends.
type TimingPolicy uint8

const (
	// RemainderCarry carries surplus cycles into the next mode, so the
	// display keeps exact time regardless of how cycles are delivered.
	RemainderCarry TimingPolicy = iota
	// ResetToZero drops surplus cycles and performs at most one
	// transition per Tick. The display runs slow when cycles are
	// delivered in large chunks.
	ResetToZero
)

func (t TimingPolicy) String() string {
	if t == ResetToZero {
		return "reset-to-zero"
	}
	return "remainder-carry"
}

// Opt configures a PPU.
type Opt func(p *PPU)

// WithTimingPolicy sets the timing policy of the PPU.
func WithTimingPolicy(policy TimingPolicy) Opt {
	return func(p *PPU) {
		p.policy = policy
	}
}

// WithPalette sets the palette used to colour the pixel buffer.
func WithPalette(pal palette.Palette) Opt {
	return func(p *PPU) {
		p.palette = pal
	}
}
