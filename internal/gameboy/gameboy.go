// Package gameboy wires the CPU, the address bus and the PPU into a
// single emulation session, and provides the driver helpers used to run
// it.
package gameboy

import (
	"github.com/pkg/errors"
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu/palette"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = 70224 // 4194304 / 59.7
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.Bus
	PPU *ppu.PPU

	log.Logger

	accessPolicy mmu.AccessPolicy
	timingPolicy ppu.TimingPolicy
	palette      palette.Palette
	cartridge    []byte
	debug        bool

	frames uint64
}

// New returns a new GameBoy that starts executing the given boot ROM
// at 0x0000. The boot ROM must be exactly 256 bytes.
func New(boot []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger:       log.NewNullLogger(),
		accessPolicy: mmu.Strict,
		timingPolicy: ppu.RemainderCarry,
		palette:      palette.Greyscale,
	}
	for _, opt := range opts {
		opt(g)
	}

	video := ppu.New(ppu.WithTimingPolicy(g.timingPolicy), ppu.WithPalette(g.palette))
	memBus, err := mmu.New(boot, video.VRAM(), video.OAM(), mmu.WithAccessPolicy(g.accessPolicy), mmu.WithLogger(g.Logger))
	if err != nil {
		return nil, errors.Wrap(err, "gameboy: creating bus")
	}
	video.AttachRegisters(memBus)

	if g.cartridge != nil {
		if err := memBus.LoadCartridge(g.cartridge); err != nil {
			return nil, errors.Wrap(err, "gameboy: loading cartridge")
		}
	}

	g.CPU = cpu.NewCPU(memBus)
	g.MMU = memBus
	g.PPU = video

	g.Infof("gameboy: boot ROM accepted (%s access, %s timing)", g.accessPolicy, g.timingPolicy)
	return g, nil
}

// Step executes a single instruction and advances the PPU by the cycles
// it took. Faults are logged and returned, the session can't continue
// past one.
func (g *GameBoy) Step() (uint8, error) {
	pc := g.CPU.PC
	cycles, err := g.CPU.Step()
	if err != nil {
		g.Errorf("gameboy: %v", err)
		return 0, err
	}
	if g.debug && !g.CPU.Halted() && !g.CPU.Stopped() {
		g.Debugf("%04x: %s", pc, g.CPU.Current())
	}

	g.PPU.Tick(uint32(cycles))
	return cycles, nil
}

// Frame steps the emulation until the PPU has finished rendering the
// current frame, and returns the pixel buffer.
func (g *GameBoy) Frame() (*[ppu.ScreenWidth * ppu.ScreenHeight]uint32, error) {
	g.PPU.ClearFrame()
	for !g.PPU.HasFrame() {
		if _, err := g.Step(); err != nil {
			return nil, err
		}
	}
	g.frames++
	g.Debugf("gameboy: frame %d complete (%016x)", g.frames, g.PPU.Checksum())

	return g.PPU.PixelBuffer(), nil
}

// Frames returns the number of frames completed.
func (g *GameBoy) Frames() uint64 {
	return g.frames
}
