package draid

import "fmt"

// rowShift is the per-child row size, log2 bytes. The reference format
// ties this to the largest allowed block size (16 MiB); the minimum
// allocation unit for one row on one child.
const rowShift = 24 // 16 MiB

// RowSize is the fixed per-child, per-row chunk size in bytes.
const RowSize = 1 << rowShift

// Config holds the immutable geometry of one dRAID instance. It is
// created once at device open and never mutated afterward.
type Config struct {
	children uint64 // C: total member count
	nparity  uint64 // p: parity columns per stripe
	nspares  uint64 // s: distributed spares
	ndata    uint64 // d: data columns per stripe
	ngroups  uint64 // redundancy groups per slice
	ashift   uint64 // per-child minimum sector shift

	groupwidth uint64 // d + p
	ndisks     uint64 // C - s
	groupsz    uint64 // groupwidth * RowSize
	devslicesz uint64 // (groupsz * ngroups) / ndisks

	permMap *PermMap
}

// NewConfig validates geometry and constructs a Config together with
// its permutation map, the combination vdev_draid_config_create
// performs at vdev open.
func NewConfig(children, nparity, nspares, ndata, ngroups, ashift uint64) (*Config, error) {
	if children < 2 {
		return nil, fmt.Errorf("%w: children must be >= 2, got %d", ErrInvalid, children)
	}
	if children > 255 {
		return nil, fmt.Errorf("%w: children must be <= 255, got %d", ErrInvalid, children)
	}
	if nparity < 1 || nparity > 3 {
		return nil, fmt.Errorf("%w: nparity must be in [1,3], got %d", ErrInvalid, nparity)
	}
	if nspares >= children {
		return nil, fmt.Errorf("%w: nspares (%d) must be < children (%d)", ErrInvalid, nspares, children)
	}
	if ndata < 1 {
		return nil, fmt.Errorf("%w: ndata must be >= 1, got %d", ErrInvalid, ndata)
	}

	ndisks := children - nspares
	groupwidth := ndata + nparity

	if groupwidth > ndisks {
		return nil, fmt.Errorf("%w: groupwidth (%d) exceeds ndisks (%d)", ErrInvalid, groupwidth, ndisks)
	}
	if ngroups == 0 || (groupwidth*ngroups)%ndisks != 0 {
		return nil, fmt.Errorf("%w: groupwidth (%d) * ngroups (%d) must be a multiple of ndisks (%d)", ErrInvalid, groupwidth, ngroups, ndisks)
	}

	permMap, err := NewPermMap(children)
	if err != nil {
		return nil, err
	}

	groupsz := groupwidth * RowSize
	devslicesz := (groupsz * ngroups) / ndisks

	return &Config{
		children:   children,
		nparity:    nparity,
		nspares:    nspares,
		ndata:      ndata,
		ngroups:    ngroups,
		ashift:     ashift,
		groupwidth: groupwidth,
		ndisks:     ndisks,
		groupsz:    groupsz,
		devslicesz: devslicesz,
		permMap:    permMap,
	}, nil
}

func (c *Config) Children() uint64     { return c.children }
func (c *Config) NParity() uint64      { return c.nparity }
func (c *Config) NSpares() uint64      { return c.nspares }
func (c *Config) NData() uint64        { return c.ndata }
func (c *Config) NGroups() uint64      { return c.ngroups }
func (c *Config) Ashift() uint64       { return c.ashift }
func (c *Config) GroupWidth() uint64   { return c.groupwidth }
func (c *Config) NDisks() uint64       { return c.ndisks }
func (c *Config) GroupSize() uint64    { return c.groupsz }
func (c *Config) DevSliceSize() uint64 { return c.devslicesz }
func (c *Config) PermMap() *PermMap    { return c.permMap }

// roundUp rounds x up to the nearest multiple of align. align need not
// be a power of two: groupwidth-based alignments usually are not.
func roundUp(x, align uint64) uint64 {
	return ((x + align - 1) / align) * align
}

// AStart rounds a logical offset up to the next group-aligned boundary,
// vdev_draid_get_astart.
func (c *Config) AStart(l uint64) uint64 {
	return roundUp(l, c.groupwidth<<c.ashift)
}

// ASize expands a logical payload size to the allocated stripe size:
// round up to full rows of ndata sectors, then scale by groupwidth.
// vdev_draid_asize.
func (c *Config) ASize(psize uint64) uint64 {
	if psize == 0 {
		return 0
	}
	rows := ((psize - 1) / (c.ndata << c.ashift)) + 1
	return (rows * c.groupwidth) << c.ashift
}

// PSize is the inverse of ASize: strip parity out of an allocated size.
// asize must be a multiple of groupwidth. vdev_draid_asize_to_psize.
func (c *Config) PSize(asize uint64) (uint64, error) {
	if asize%c.groupwidth != 0 {
		return 0, fmt.Errorf("%w: asize %d is not a multiple of groupwidth %d", ErrInvalid, asize, c.groupwidth)
	}
	return (asize / c.groupwidth) * c.ndata, nil
}

// MaxRebuildableASize returns the largest allocatable extent that can
// be healed from a maxSegment-sized contiguous run, after discarding
// any remainder that wouldn't divide evenly across the data columns.
// vdev_draid_max_rebuildable_asize.
func (c *Config) MaxRebuildableASize(maxSegment, maxBlockSize uint64) uint64 {
	psize := roundUp(maxSegment*c.ndata, 1<<c.ashift)
	if psize > maxBlockSize {
		psize = maxBlockSize
	}

	psize >>= c.ashift
	psize /= c.ndata
	psize *= c.ndata
	psize <<= c.ashift

	return c.ASize(psize)
}

// AlignMetaslab aligns a metaslab's start to the group width and trims
// its size to a whole number of group-width chunks, since full-stripe
// writes make any remainder unallocatable. vdev_draid_metaslab_init.
func (c *Config) AlignMetaslab(start, size uint64) (alignedStart, alignedSize uint64) {
	chunk := c.groupwidth << c.ashift
	astart := c.AStart(start)
	asize := ((size - (astart - start)) / chunk) * chunk
	return astart, asize
}
