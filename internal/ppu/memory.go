package ppu

// Memory is a block of memory owned by the PPU. The address bus holds a
// handle to it, so CPU writes are seen by the next render.
type Memory struct {
	data    []uint8
	onWrite func(offset uint16)
}

func newMemory(size int, onWrite func(offset uint16)) *Memory {
	return &Memory{data: make([]uint8, size), onWrite: onWrite}
}

// Read returns the byte at the given offset.
func (m *Memory) Read(offset uint16) uint8 {
	return m.data[offset]
}

// Write stores the byte at the given offset.
func (m *Memory) Write(offset uint16, value uint8) {
	if m.data[offset] == value {
		return
	}
	m.data[offset] = value
	if m.onWrite != nil {
		m.onWrite(offset)
	}
}

// Size returns the size of the memory in bytes.
func (m *Memory) Size() int {
	return len(m.data)
}
