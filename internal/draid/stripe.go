package draid

import "fmt"

// stripeGeometry is the shared column-width math behind all three
// StripeBuilder variants: vdev_draid_map_alloc.
type stripeGeometry struct {
	physOffset uint64
	perm       uint64
	groupStart uint64
	wrap       uint64
	cols       uint64 // number of columns actually carrying data this I/O
	bigCols    uint64 // columns carrying one extra sector of remainder
	nskip      uint64
	sizes      []uint64 // per-column size in bytes, index 0..groupwidth-1
	devices    []uint64
	offsets    []uint64 // per-column physical offset, already wrap-adjusted
}

func (c *Config) planStripe(offset, size uint64) (*stripeGeometry, error) {
	if offset != c.AStart(offset) {
		return nil, fmt.Errorf("%w: offset %d is not group-aligned", ErrInvalid, offset)
	}

	physOffset, perm, groupStart := c.LogicalToPhysical(offset)

	wrap := c.groupwidth
	if groupStart+c.groupwidth > c.ndisks {
		wrap = c.ndisks - groupStart
	}

	psize := size >> c.ashift
	q := psize / c.ndata
	r := psize - q*c.ndata

	bc := uint64(0)
	if r != 0 {
		bc = r + c.nparity
	}
	if bc >= c.groupwidth {
		return nil, fmt.Errorf("%w: big-column count %d exceeds groupwidth %d", ErrInvalid, bc, c.groupwidth)
	}

	tot := psize + c.nparity*(q+boolToU64(r != 0))

	cols := c.groupwidth
	if q == 0 {
		cols = bc
	}

	base, iter := c.getPerm(perm)

	sizes := make([]uint64, c.groupwidth)
	devices := make([]uint64, c.groupwidth)
	offsets := make([]uint64, c.groupwidth)

	po := physOffset
	for i := uint64(0); i < c.groupwidth; i++ {
		col := (groupStart + i) % c.ndisks
		if i == wrap {
			po += RowSize
		}

		devices[i] = c.permuteID(base, iter, col)
		offsets[i] = po

		switch {
		case i >= cols:
			sizes[i] = 0
		case i < bc:
			sizes[i] = (q + 1) << c.ashift
		default:
			sizes[i] = q << c.ashift
		}
	}

	asize := uint64(0)
	for _, s := range sizes {
		asize += s
	}
	nskip := roundUp(tot, c.groupwidth) - tot

	return &stripeGeometry{
		physOffset: physOffset,
		perm:       perm,
		groupStart: groupStart,
		wrap:       wrap,
		cols:       cols,
		bigCols:    bc,
		nskip:      nskip,
		sizes:      sizes,
		devices:    devices,
		offsets:    offsets,
	}, nil
}

func boolToU64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// BuildWriteStripe lays out a full-stripe write: parity columns get
// freshly zeroed buffers, data columns with a full share view the
// caller's payload directly, short columns are padded with a zero
// skip sector, and empty columns are pure skip sectors. Every column
// ends up the same size so parity can be computed over the whole
// width. vdev_draid_map_alloc + vdev_draid_map_alloc_write.
func (c *Config) BuildWriteStripe(offset uint64, payload []byte) (*StripeMap, error) {
	geo, err := c.planStripe(offset, uint64(len(payload)))
	if err != nil {
		return nil, err
	}

	skipSize := uint64(1) << c.ashift
	paritySize := geo.sizes[0]
	if geo.bigCols == 0 {
		// uniform stripe: every data column already carries q sectors,
		// so the parity size is whatever the data columns settled on.
		paritySize = geo.sizes[c.nparity]
	}
	if paritySize == 0 {
		paritySize = skipSize
	}

	sm := &StripeMap{
		Offset:       offset,
		PSize:        uint64(len(payload)),
		Columns:      make([]Column, c.groupwidth),
		FirstDataCol: int(c.nparity),
		BigCols:      int(geo.bigCols),
		SkipStart:    int(geo.bigCols),
		NSkip:        int(geo.nskip),
		IncludeSkip:  false,
	}

	for i := uint64(0); i < c.nparity; i++ {
		sm.Columns[i] = Column{
			DevIdx:     geo.devices[i],
			PhysOffset: geo.offsets[i],
			Size:       paritySize,
			Buffer:     make([]byte, paritySize),
		}
	}

	abdOff := uint64(0)
	skipStart := geo.bigCols
	for i := c.nparity; i < c.groupwidth; i++ {
		origSize := geo.sizes[i]
		var buf []byte

		switch {
		case skipStart == 0 || i < skipStart:
			// big column: full share, a direct view of the payload.
			buf = payload[abdOff : abdOff+origSize]
		case i < geo.cols:
			// short column: real tail plus a zero-filled skip sector.
			buf = make([]byte, paritySize)
			copy(buf, payload[abdOff:abdOff+origSize])
		default:
			// empty column: pure skip sector.
			buf = make([]byte, paritySize)
		}

		sm.Columns[i] = Column{
			DevIdx:     geo.devices[i],
			PhysOffset: geo.offsets[i],
			Size:       paritySize,
			Buffer:     buf,
		}
		abdOff += origSize
	}

	return sm, nil
}

// BuildScrubStripe lays out a scrub/resilver read: identical column
// layout to a write, except the skip sectors of empty columns are
// slices of one shared auxiliary buffer instead of a zero view. A short
// column carries its data tail and its skip sector together in its own
// buffer, not in the shared one. vdev_draid_map_alloc_scrub.
func (c *Config) BuildScrubStripe(offset, size uint64) (*StripeMap, error) {
	geo, err := c.planStripe(offset, size)
	if err != nil {
		return nil, err
	}

	skipSize := uint64(1) << c.ashift
	skipBuf := make([]byte, geo.nskip*skipSize)

	sm := &StripeMap{
		Offset:       offset,
		PSize:        size,
		Columns:      make([]Column, c.groupwidth),
		FirstDataCol: int(c.nparity),
		BigCols:      int(geo.bigCols),
		SkipStart:    int(geo.bigCols),
		NSkip:        int(geo.nskip),
		SkipBuffer:   skipBuf,
		IncludeSkip:  true,
	}

	parityBufSize := geo.sizes[0]
	for i := uint64(0); i < c.nparity; i++ {
		if parityBufSize == 0 {
			parityBufSize = skipSize
		}
		sm.Columns[i] = Column{
			DevIdx:     geo.devices[i],
			PhysOffset: geo.offsets[i],
			Size:       parityBufSize,
			Buffer:     make([]byte, parityBufSize),
		}
	}

	abdOff := uint64(0)
	skipStart := geo.bigCols
	for i := c.nparity; i < c.groupwidth; i++ {
		origSize := geo.sizes[i]
		skipIdx := i - skipStart

		var buf []byte
		var resultSize uint64

		switch {
		case skipStart == 0 || i < skipStart:
			buf = make([]byte, origSize)
			resultSize = origSize
		case i < geo.cols:
			resultSize = origSize + skipSize
			buf = make([]byte, resultSize)
		default:
			resultSize = skipSize
			buf = skipBuf[skipIdx*skipSize : (skipIdx+1)*skipSize]
		}

		sm.Columns[i] = Column{
			DevIdx:     geo.devices[i],
			PhysOffset: geo.offsets[i],
			Size:       resultSize,
			Buffer:     buf,
		}
		abdOff += origSize
	}

	return sm, nil
}

// BuildReadStripe lays out a normal read: only data columns are
// scheduled, the common case where every column's checksum is expected
// to validate without consulting parity. vdev_draid_map_alloc_read.
func (c *Config) BuildReadStripe(offset, size uint64) (*StripeMap, error) {
	geo, err := c.planStripe(offset, size)
	if err != nil {
		return nil, err
	}

	sm := &StripeMap{
		Offset:       offset,
		PSize:        size,
		Columns:      make([]Column, c.groupwidth),
		FirstDataCol: int(c.nparity),
		BigCols:      int(geo.bigCols),
		SkipStart:    int(geo.bigCols),
		NSkip:        int(geo.nskip),
		IncludeSkip:  false,
	}

	for i := c.nparity; i < c.groupwidth; i++ {
		sm.Columns[i] = Column{
			DevIdx:     geo.devices[i],
			PhysOffset: geo.offsets[i],
			Size:       geo.sizes[i],
			Buffer:     make([]byte, geo.sizes[i]),
		}
	}
	// Parity columns are recorded (device/offset) but not yet sized or
	// scheduled; ExpandReadStripe fills them in if reconstruction turns
	// out to be necessary.
	for i := uint64(0); i < c.nparity; i++ {
		sm.Columns[i] = Column{
			DevIdx:     geo.devices[i],
			PhysOffset: geo.offsets[i],
		}
	}

	return sm, nil
}

// ExpandReadStripe upgrades a normal read stripe map into a full scrub-
// shaped one after a checksum failure, attaching the skip buffer and
// sizing the parity columns so reconstruct can be attempted.
// vdev_draid_map_include_skip_sectors.
func (c *Config) ExpandReadStripe(offset, size uint64, sm *StripeMap) (*StripeMap, error) {
	expanded, err := c.BuildScrubStripe(offset, size)
	if err != nil {
		return nil, err
	}

	// Carry over already-read data so a caller doesn't need to re-issue
	// I/O for columns that succeeded the first time.
	for i := sm.FirstDataCol; i < len(sm.Columns) && i < len(expanded.Columns); i++ {
		if sm.Columns[i].Error == nil && sm.Columns[i].Tried {
			n := len(sm.Columns[i].Buffer)
			copy(expanded.Columns[i].Buffer[:n], sm.Columns[i].Buffer)
			expanded.Columns[i].Tried = true
		}
	}

	return expanded, nil
}
