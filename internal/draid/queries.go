package draid

// AlignRange shrinks a [start, start+size) byte range inward to
// group-width boundaries (start rounded up, end rounded down), the
// alignment scrub, initialize, and trim all need before touching whole
// stripes instead of partial ones.
// vdev_draid_io_verify / vdev_draid_metaslab_init share this shape.
func (c *Config) AlignRange(start, size uint64) (alignedStart, alignedSize uint64) {
	chunk := c.groupwidth << c.ashift
	alignedStart = roundUp(start, chunk)
	tail := start + size
	alignedEnd := (tail / chunk) * chunk
	if alignedEnd <= alignedStart {
		return alignedStart, 0
	}
	return alignedStart, alignedEnd - alignedStart
}

// BlockSizeRange describes the inclusive sector-count range a
// StripeBuilder can lay out for one group without spanning into the
// next, in units of 1<<ashift.
type BlockSizeRange struct {
	MinSectors uint64
	MaxSectors uint64
}

// BlockSizePolicy returns the allowed psize range (in sectors) for a
// single I/O against this geometry: at least one data column's worth,
// at most a full group minus its parity.
func (c *Config) BlockSizePolicy() BlockSizeRange {
	return BlockSizeRange{
		MinSectors: 1,
		MaxSectors: c.ndata * (c.groupsz >> c.ashift) / c.groupwidth,
	}
}

// FitsInGroup reports whether an I/O of size bytes starting at offset
// stays within a single redundancy group, invariant 5 from spec §8.
func (c *Config) FitsInGroup(offset, size uint64) bool {
	if size == 0 {
		return true
	}
	return c.OffsetToGroup(offset) == c.OffsetToGroup(offset+size-1)
}
