package ppu

// Tile represents a tile. Each tile has a size of 8x8 pixels and a color
// depth of 4 colors/gray shades, stored as colour numbers indexed by
// [y][x].
type Tile [8][8]uint8

// NewTile decodes the 16 bytes of a tile. Each row is stored in two
// bytes, the first holding bit 0 and the second bit 1 of the colour
// number of each pixel, with the leftmost pixel in bit 7.
func NewTile(b [16]uint8) Tile {
	var t Tile
	for tileY := 0; tileY < 8; tileY++ {
		t[tileY] = decodeRow(b[tileY*2], b[tileY*2+1])
	}
	return t
}

// decodeRow combines the two bit planes of a tile row into colour numbers.
func decodeRow(lo, hi uint8) [8]uint8 {
	var row [8]uint8
	for tileX := 0; tileX < 8; tileX++ {
		row[tileX] = (lo>>(7-tileX))&1 | ((hi>>(7-tileX))&1)<<1
	}
	return row
}

// ReadTiles redecodes every tile whose bytes changed since the last call.
func (p *PPU) ReadTiles() {
	if !p.dirty {
		return
	}
	for i := 0; i < tileCount; i++ {
		if !p.tileDirty[i] {
			continue
		}
		p.tileDirty[i] = false

		var raw [16]uint8
		copy(raw[:], p.vram.data[i*16:i*16+16])
		tile := NewTile(raw)

		// 0x8000 - 0x8FFF, unsigned
		if i < 256 {
			p.tiles[1][i] = tile
		}
		// 0x8800 - 0x97FF, signed from 0x9000
		if i >= 256 {
			p.tiles[0][i-256] = tile
		} else if i >= 128 {
			p.tiles[0][i] = tile
		}
	}
	p.dirty = false
}

// Tile returns the decoded tile with the given index in the tile data
// bank currently selected by LCDC.
func (p *PPU) Tile(index uint8) Tile {
	p.ReadTiles()
	return p.tiles[p.bank()][index]
}

// bank returns the tile cache bank selected by LCDC.4.
func (p *PPU) bank() int {
	if p.lcdc.UsingSignedTileData() {
		return 0
	}
	return 1
}
