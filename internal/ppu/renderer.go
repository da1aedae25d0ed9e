package ppu

// renderScanline renders the background of the current line into the
// pixel buffer.
func (p *PPU) renderScanline() {
	p.ReadTiles()

	tiles := &p.tiles[p.bank()]
	tileMap := p.lcdc.BackgroundTileMapAddress - 0x8000

	y := p.line + p.scy
	mapRow := tileMap + uint16(y/8)*32
	row := p.pixels[int(p.line)*ScreenWidth : int(p.line+1)*ScreenWidth]

	for x := 0; x < ScreenWidth; x++ {
		px := uint8(x) + p.scx
		index := p.vram.data[mapRow+uint16(px/8)]
		row[x] = p.palette.GetColour(tiles[index][y%8][px%8])
	}
}
