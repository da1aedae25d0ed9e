package lcd

import "testing"

func TestController(t *testing.T) {
	c := NewController()
	if !c.UsingSignedTileData() || c.BackgroundTileMapAddress != 0x9800 {
		t.Errorf("expected signed tile data and map 0x9800 at reset")
	}
	c.Write(0x91)
	if c.UsingSignedTileData() || c.TileDataAddress != 0x8000 {
		t.Errorf("expected tile data at 0x8000, got 0x%04x", c.TileDataAddress)
	}
	if c.BackgroundTileMapAddress != 0x9800 {
		t.Errorf("expected map 0x9800, got 0x%04x", c.BackgroundTileMapAddress)
	}
	if c.Read() != 0x91 {
		t.Errorf("expected 0x91, got 0x%02x", c.Read())
	}
	c.Write(0x08)
	if c.BackgroundTileMapAddress != 0x9C00 {
		t.Errorf("expected map 0x9C00, got 0x%04x", c.BackgroundTileMapAddress)
	}
}

func TestMode_Duration(t *testing.T) {
	if OAM.Duration()+VRAM.Duration()+HBlank.Duration() != VBlank.Duration() {
		t.Errorf("expected a visible line to last as long as a blank line")
	}
	if LineDuration != 456 {
		t.Errorf("expected 456 cycle lines, got %d", LineDuration)
	}
}
