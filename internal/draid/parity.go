package draid

import (
	"fmt"

	"github.com/klauspost/reedsolomon"
)

// Parity computes and reconstructs the vertical (RAID-Z-style) parity
// for one stripe's columns, using Reed-Solomon over GF(2^8). A Parity
// is bound to a fixed (ndata, nparity) shape and is safe to reuse
// across stripes that share it.
type Parity struct {
	ndata   int
	nparity int
	enc     reedsolomon.Encoder
}

// NewParity constructs a Parity for ndata data columns and nparity
// parity columns, nparity in [1,3] as the dRAID format allows.
func NewParity(ndata, nparity uint64) (*Parity, error) {
	if nparity < 1 || nparity > 3 {
		return nil, fmt.Errorf("%w: nparity must be in [1,3], got %d", ErrInvalid, nparity)
	}
	if ndata < 1 {
		return nil, fmt.Errorf("%w: ndata must be >= 1, got %d", ErrInvalid, ndata)
	}

	enc, err := reedsolomon.New(int(ndata), int(nparity))
	if err != nil {
		return nil, fmt.Errorf("%w: constructing reed-solomon encoder: %v", ErrInvalid, err)
	}

	return &Parity{ndata: int(ndata), nparity: int(nparity), enc: enc}, nil
}

// Generate fills a stripe's parity columns from its data columns. All
// columns in sm must already be sized and buffered equally, the shape
// BuildWriteStripe and BuildScrubStripe produce.
func (p *Parity) Generate(sm *StripeMap) error {
	shards, err := p.shardsFromStripe(sm)
	if err != nil {
		return err
	}
	if err := p.enc.Encode(shards); err != nil {
		return fmt.Errorf("%w: generating parity: %v", ErrIO, err)
	}
	return nil
}

// Verify reports whether the stripe's currently-populated parity
// columns agree with what Generate would compute from its data
// columns. Every column takes part in the check, including columns
// marked Skipped.
func (p *Parity) Verify(sm *StripeMap) (bool, error) {
	shards, err := p.shardsFromStripe(sm)
	if err != nil {
		return false, err
	}
	ok, err := p.enc.Verify(shards)
	if err != nil {
		return false, fmt.Errorf("%w: verifying parity: %v", ErrIO, err)
	}
	return ok, nil
}

// Reconstruct rebuilds missing columns (those with Error set or with a
// nil Buffer) from the surviving ones. It fails with ErrNoChildren if
// more columns are missing than nparity can repair.
func (p *Parity) Reconstruct(sm *StripeMap) error {
	shards, missingIdx := p.shardsForReconstruct(sm)
	if len(missingIdx) > p.nparity {
		return fmt.Errorf("%w: %d columns missing, only %d parity columns available", ErrNoChildren, len(missingIdx), p.nparity)
	}
	if len(missingIdx) == 0 {
		return nil
	}
	if err := p.enc.Reconstruct(shards); err != nil {
		return fmt.Errorf("%w: reconstructing stripe: %v", ErrIO, err)
	}
	p.writeBackShards(sm, shards, missingIdx)
	return nil
}

// ReconstructData is like Reconstruct but only rebuilds the data
// columns, skipping parity recomputation. Used when a repair-write is
// about to overwrite the column and regenerating its parity is wasted
// work.
func (p *Parity) ReconstructData(sm *StripeMap) error {
	shards, missingIdx := p.shardsForReconstruct(sm)
	if len(missingIdx) > p.nparity {
		return fmt.Errorf("%w: %d columns missing, only %d parity columns available", ErrNoChildren, len(missingIdx), p.nparity)
	}
	if len(missingIdx) == 0 {
		return nil
	}
	if err := p.enc.ReconstructData(shards); err != nil {
		return fmt.Errorf("%w: reconstructing stripe data: %v", ErrIO, err)
	}
	p.writeBackShards(sm, shards, missingIdx)
	return nil
}

// shardIndex converts a StripeMap column index (parity columns first,
// at [0,nparity), data columns last) to the shard index reedsolomon
// expects (data shards first, at [0,ndata), parity shards last).
func (p *Parity) shardIndex(colIdx int) int {
	if colIdx < p.nparity {
		return p.ndata + colIdx
	}
	return colIdx - p.nparity
}

// columnIndex is the inverse of shardIndex.
func (p *Parity) columnIndex(shardIdx int) int {
	if shardIdx < p.ndata {
		return p.nparity + shardIdx
	}
	return shardIdx - p.ndata
}

func (p *Parity) shardsFromStripe(sm *StripeMap) ([][]byte, error) {
	if len(sm.Columns) != p.ndata+p.nparity {
		return nil, fmt.Errorf("%w: stripe has %d columns, parity configured for %d", ErrInvalid, len(sm.Columns), p.ndata+p.nparity)
	}
	shards := make([][]byte, p.ndata+p.nparity)
	for i, col := range sm.Columns {
		shards[p.shardIndex(i)] = col.Buffer
	}
	return shards, nil
}

func (p *Parity) shardsForReconstruct(sm *StripeMap) (shards [][]byte, missingIdx []int) {
	shards = make([][]byte, p.ndata+p.nparity)
	for i, col := range sm.Columns {
		shard := p.shardIndex(i)
		if col.Error != nil || col.Buffer == nil || col.Skipped {
			missingIdx = append(missingIdx, shard)
			continue
		}
		shards[shard] = col.Buffer
	}
	return shards, missingIdx
}

func (p *Parity) writeBackShards(sm *StripeMap, shards [][]byte, missingIdx []int) {
	for _, shard := range missingIdx {
		col := p.columnIndex(shard)
		sm.Columns[col].Buffer = shards[shard]
		sm.Columns[col].Error = nil
	}
}
