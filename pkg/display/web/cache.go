package web

// cache remembers the hashes of the most recently sent frames. Clients
// keep the frame data in the same slots, so a repeated frame is sent as
// its slot index.
type cache struct {
	hashes []uint64
	used   []bool
	idx    int
}

func newCache(size int) *cache {
	return &cache{
		hashes: make([]uint64, size),
		used:   make([]bool, size),
	}
}

// add stores the hash in the next slot, evicting the oldest entry, and
// returns the slot index.
func (c *cache) add(hash uint64) int {
	i := c.idx
	c.hashes[i] = hash
	c.used[i] = true

	c.idx = (c.idx + 1) % len(c.hashes)
	return i
}

// index returns the slot holding the hash, or -1.
func (c *cache) index(hash uint64) int {
	for i, h := range c.hashes {
		if c.used[i] && h == hash {
			return i
		}
	}

	return -1
}
