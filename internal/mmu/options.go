package mmu

import "github.com/thelolagemann/gomeboy-core/pkg/log"

// AccessPolicy decides which segments are readable.
type AccessPolicy uint8

const (
	// Strict faults on reads of cartridge RAM, IO and high RAM, which
	// are write-only in this memory map.
	Strict AccessPolicy = iota
	// Permissive backs cartridge RAM, IO and high RAM for reads as well,
	// and reads of the unusable range return 0xFF.
	Permissive
)

func (p AccessPolicy) String() string {
	if p == Permissive {
		return "permissive"
	}
	return "strict"
}

// Opt configures a Bus.
type Opt func(b *Bus)

// WithAccessPolicy sets the access policy of the bus.
func WithAccessPolicy(policy AccessPolicy) Opt {
	return func(b *Bus) {
		b.policy = policy
	}
}

// WithLogger sets the logger of the bus.
func WithLogger(l log.Logger) Opt {
	return func(b *Bus) {
		b.Log = l
	}
}
