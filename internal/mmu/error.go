package mmu

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

var (
	// ErrBootROMSize is returned when the boot ROM is not exactly
	// BootROMSize bytes long.
	ErrBootROMSize = errors.New("invalid boot ROM size")
	// ErrCartridgeSize is returned when a cartridge does not fit the
	// unbanked cartridge ROM.
	ErrCartridgeSize = errors.New("cartridge too large")
)

// AccessFault is raised when an address is read or written in a way its
// segment doesn't allow.
type AccessFault struct {
	Address uint16
	Segment Segment
	Write   bool
}

func (e *AccessFault) Error() string {
	if e.Write {
		return fmt.Sprintf("illegal write to %s at 0x%04X", e.Segment, e.Address)
	}
	return fmt.Sprintf("illegal read from %s at 0x%04X", e.Segment, e.Address)
}

func (e *AccessFault) Fault() {}

var _ types.Fault = (*AccessFault)(nil)
