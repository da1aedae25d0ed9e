package palette

// Palette represents a palette. A palette is an array of 4 colours
// packed as 0x00RRGGBB, indexed by the 2-bit colour number of a pixel.
type Palette [4]uint32

// Greyscale is the default greyscale palette, from white to black.
var Greyscale = Palette{
	0xFFFFFF,
	0xCCCCCC,
	0x777777,
	0x000000,
}

// Green attempts to emulate the original colour palette as it would
// have appeared on the original Game Boy.
var Green = Palette{
	0x9BBC0F,
	0x8BAC0F,
	0x306230,
	0x0F380F,
}

// GetColour returns the packed colour for the given colour index.
func (p Palette) GetColour(index uint8) uint32 {
	return p[index&0x03]
}

// RGB unpacks a colour into its red, green and blue components.
func RGB(colour uint32) (r, g, b uint8) {
	return uint8(colour >> 16), uint8(colour >> 8), uint8(colour)
}
