package lcd

// Mode represents a mode of the LCD. The values match the mode bits of
// the STAT register.
type Mode uint8

const (
	// HBlank is the horizontal blanking mode. The CPU can access both the display RAM and OAM.
	HBlank Mode = iota
	// VBlank is the vertical blanking mode. The CPU can access both the display RAM and OAM.
	VBlank
	// OAM is the OAM scan mode. The CPU can access the display RAM but not OAM.
	OAM
	// VRAM is the pixel transfer mode. The CPU can access neither the display RAM nor OAM.
	VRAM
)

// Durations in clock cycles. VBlank lasts one Duration per line.
const (
	OAMDuration    = 80
	VRAMDuration   = 172
	HBlankDuration = 204
	VBlankDuration = 456

	// LineDuration is the length of a single scanline.
	LineDuration = OAMDuration + VRAMDuration + HBlankDuration
)

// Duration returns the number of cycles the mode lasts before the next
// transition.
func (m Mode) Duration() uint32 {
	switch m {
	case OAM:
		return OAMDuration
	case VRAM:
		return VRAMDuration
	case HBlank:
		return HBlankDuration
	}
	return VBlankDuration
}

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HorizontalBlank"
	case VBlank:
		return "VerticalBlank"
	case OAM:
		return "ScanlineOAM"
	case VRAM:
		return "ScanlineVRAM"
	}
	return "Unknown"
}
