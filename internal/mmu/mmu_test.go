package mmu

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu/lcd"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

func testBoot() []byte {
	boot := make([]byte, BootROMSize)
	for i := range boot {
		boot[i] = uint8(i)
	}
	return boot
}

func newTestBus(t *testing.T, opts ...Opt) (*Bus, *ppu.PPU) {
	t.Helper()
	p := ppu.New()
	b, err := New(testBoot(), p.VRAM(), p.OAM(), opts...)
	require.NoError(t, err)
	p.AttachRegisters(b)
	return b, p
}

func requireFault(t *testing.T, address uint16, segment Segment, write bool, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		fault, ok := r.(*AccessFault)
		require.True(t, ok, "expected AccessFault, got %v", r)
		require.Equal(t, AccessFault{Address: address, Segment: segment, Write: write}, *fault)
	}()
	fn()
}

func TestNew_BootROMSize(t *testing.T) {
	p := ppu.New()
	for _, size := range []int{0, BootROMSize - 1, BootROMSize + 1} {
		_, err := New(make([]byte, size), p.VRAM(), p.OAM())
		require.ErrorIs(t, err, ErrBootROMSize)
	}
	_, err := New(nil, p.VRAM(), p.OAM())
	require.ErrorIs(t, err, ErrBootROMSize)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		segment    Segment
		start, end uint16
	}{
		{BootROM, 0x0000, 0x00FF},
		{CartridgeROM, 0x0100, 0x7FFF},
		{VideoRAM, 0x8000, 0x9FFF},
		{CartridgeRAM, 0xA000, 0xBFFF},
		{WorkRAM, 0xC000, 0xFDFF},
		{OAM, 0xFE00, 0xFE9F},
		{Unusable, 0xFEA0, 0xFEFF},
		{IO, 0xFF00, 0xFF7F},
		{HighRAM, 0xFF80, 0xFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.segment.String(), func(t *testing.T) {
			s, offset := Classify(tt.start)
			require.Equal(t, tt.segment, s)
			require.Equal(t, uint16(0), offset)

			s, offset = Classify(tt.end)
			require.Equal(t, tt.segment, s)
			require.Equal(t, tt.end-tt.start, offset)
			require.Equal(t, int(tt.end-tt.start)+1, s.Size())
		})
	}

	t.Run("every address", func(t *testing.T) {
		for address := 0; address <= 0xFFFF; address++ {
			s, offset := Classify(uint16(address))
			require.Less(t, int(offset), s.Size())
			require.Equal(t, uint16(address), s.Start()+offset)
		}
	})
	t.Run("sizes", func(t *testing.T) {
		require.Equal(t, ppu.VRAMSize, VideoRAM.Size())
		require.Equal(t, ppu.OAMSize, OAM.Size())
		require.Equal(t, BootROMSize, BootROM.Size())
	})
}

func TestBus_Strict(t *testing.T) {
	b, p := newTestBus(t)
	cart := make([]byte, CartridgeROMSize)
	for i := range cart {
		cart[i] = uint8(i >> 8)
	}
	require.NoError(t, b.LoadCartridge(cart))

	t.Run("boot ROM", func(t *testing.T) {
		require.Equal(t, uint8(0x00), b.Read(0x0000))
		require.Equal(t, uint8(0xFF), b.Read(0x00FF))
		requireFault(t, 0x0000, BootROM, true, func() { b.Write(0x0000, 1) })
		requireFault(t, 0x00FF, BootROM, true, func() { b.Write(0x00FF, 1) })
	})
	t.Run("cartridge ROM", func(t *testing.T) {
		require.Equal(t, uint8(0x01), b.Read(0x0100))
		require.Equal(t, uint8(0x7F), b.Read(0x7FFF))
		requireFault(t, 0x0100, CartridgeROM, true, func() { b.Write(0x0100, 1) })
		requireFault(t, 0x7FFF, CartridgeROM, true, func() { b.Write(0x7FFF, 1) })
	})
	t.Run("video RAM", func(t *testing.T) {
		b.Write(0x8000, 0x12)
		b.Write(0x9FFF, 0x34)
		require.Equal(t, uint8(0x12), p.VRAM().Read(0x0000))
		require.Equal(t, uint8(0x34), p.VRAM().Read(0x1FFF))
		require.Equal(t, uint8(0x34), b.Read(0x9FFF))
	})
	t.Run("cartridge RAM", func(t *testing.T) {
		b.Write(0xA000, 1)
		b.Write(0xBFFF, 1)
		requireFault(t, 0xA000, CartridgeRAM, false, func() { b.Read(0xA000) })
		requireFault(t, 0xBFFF, CartridgeRAM, false, func() { b.Read(0xBFFF) })
	})
	t.Run("work RAM", func(t *testing.T) {
		b.Write(0xC000, 0x56)
		b.Write(0xFDFF, 0x78)
		require.Equal(t, uint8(0x56), b.Read(0xC000))
		require.Equal(t, uint8(0x78), b.Read(0xFDFF))
	})
	t.Run("OAM", func(t *testing.T) {
		b.Write(0xFE00, 0x9A)
		b.Write(0xFE9F, 0xBC)
		require.Equal(t, uint8(0x9A), p.OAM().Read(0x00))
		require.Equal(t, uint8(0xBC), p.OAM().Read(0x9F))
		require.Equal(t, uint8(0xBC), b.Read(0xFE9F))
	})
	t.Run("unusable", func(t *testing.T) {
		requireFault(t, 0xFEA0, Unusable, false, func() { b.Read(0xFEA0) })
		requireFault(t, 0xFEFF, Unusable, true, func() { b.Write(0xFEFF, 1) })
	})
	t.Run("IO", func(t *testing.T) {
		b.Write(0xFF00, 1)
		b.Write(0xFF7F, 1)
		requireFault(t, 0xFF00, IO, false, func() { b.Read(0xFF00) })
		requireFault(t, 0xFF7F, IO, false, func() { b.Read(0xFF7F) })
	})
	t.Run("high RAM", func(t *testing.T) {
		b.Write(0xFF80, 1)
		b.Write(0xFFFF, 1)
		requireFault(t, 0xFF80, HighRAM, false, func() { b.Read(0xFF80) })
		requireFault(t, 0xFFFF, HighRAM, false, func() { b.Read(0xFFFF) })
	})
}

func TestBus_Permissive(t *testing.T) {
	b, p := newTestBus(t, WithAccessPolicy(Permissive))
	require.Equal(t, Permissive, b.Policy())

	for _, address := range []uint16{0xA000, 0xBFFF, 0xFF00, 0xFF7F, 0xFF80, 0xFFFF} {
		b.Write(address, 0x42)
		require.Equal(t, uint8(0x42), b.Read(address), "0x%04X", address)
	}

	b.Write(0xFEA0, 0x42)
	require.Equal(t, uint8(0xFF), b.Read(0xFEA0))

	requireFault(t, 0x0000, BootROM, true, func() { b.Write(0x0000, 1) })

	t.Run("display registers", func(t *testing.T) {
		p.Tick(lcd.LineDuration * 2)
		require.Equal(t, uint8(2), b.Read(types.LY))

		b.Write(types.SCX, 0x10)
		require.Equal(t, uint8(0x10), b.Read(types.SCX))
		b.Write(types.LCDC, 0x91)
		require.Equal(t, uint8(0x91), p.Control())

		// LY is read only
		b.Write(types.LY, 0x99)
		require.Equal(t, uint8(2), b.Read(types.LY))
	})
}

func TestBus_WriteWord(t *testing.T) {
	b, _ := newTestBus(t)
	b.WriteWord(0xC000, 0x1234)
	require.Equal(t, uint8(0x34), b.Read(0xC000))
	require.Equal(t, uint8(0x12), b.Read(0xC001))

	// the high byte wraps to 0x0000, which is read only
	requireFault(t, 0x0000, BootROM, true, func() { b.WriteWord(0xFFFF, 0x1234) })
}

func TestBus_DisableBootROM(t *testing.T) {
	b, _ := newTestBus(t)
	require.NoError(t, b.LoadCartridge([]byte{0xAA, 0xBB}))
	require.Equal(t, uint8(0x00), b.Read(0x0000))

	b.Write(types.BDIS, 1)
	require.True(t, b.BootROMDisabled())
	require.Equal(t, uint8(0xAA), b.Read(0x0000))
	require.Equal(t, uint8(0xBB), b.Read(0x0001))
}

func TestBus_LoadCartridge(t *testing.T) {
	b, _ := newTestBus(t)
	require.ErrorIs(t, b.LoadCartridge(make([]byte, CartridgeROMSize+1)), ErrCartridgeSize)
	require.NoError(t, b.LoadCartridge(make([]byte, CartridgeROMSize)))
}
