package ppu

const (
	// tileCount is the number of tiles held in tile data (0x8000 - 0x97FF).
	tileCount = 384
	// tileDataSize is the size of the tile data in bytes.
	tileDataSize = tileCount * 16
)

// markTile invalidates the tile containing the given VRAM offset. Writes
// to the tile maps don't affect the tile cache.
func (p *PPU) markTile(offset uint16) {
	if offset >= tileDataSize {
		return
	}
	p.tileDirty[offset/16] = true
	p.dirty = true
}
