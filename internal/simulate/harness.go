package simulate

import (
	"context"
	"fmt"
	"sync"

	"github.com/dparity/draid/internal/draid"
	"github.com/sirupsen/logrus"
)

// Harness is a fixed-size collection of in-memory child vdevs
// implementing draid.ChildEnvironment. cmd/draidctl drives dRAID
// write/read/scrub flows against it the way the
// teacher's cmd/main.go drove raid.NewRAID0Controller through a
// write/read/ClearDisk/read cycle.
type Harness struct {
	mu    sync.Mutex
	disks []*Disk
	dtl   map[uint64]map[uint64]bool // childIdx -> txg -> missing since
}

// NewHarness allocates nchildren disks, each sizePerChild bytes.
func NewHarness(nchildren int, sizePerChild uint64) *Harness {
	disks := make([]*Disk, nchildren)
	for i := range disks {
		disks[i] = newDisk(uint64(i), sizePerChild)
	}
	return &Harness{
		disks: disks,
		dtl:   make(map[uint64]map[uint64]bool),
	}
}

func (h *Harness) disk(childIdx uint64) (*Disk, error) {
	if childIdx >= uint64(len(h.disks)) {
		return nil, fmt.Errorf("%w: child index %d out of range [0,%d)", draid.ErrInvalid, childIdx, len(h.disks))
	}
	return h.disks[childIdx], nil
}

// ChildIO implements draid.ChildIO. It is fully synchronous but honors
// the asynchronous callback contract so it drops straight into
// Dispatcher's issue loop.
func (h *Harness) ChildIO(ctx context.Context, childIdx uint64, physOffset uint64, buf []byte, op draid.Op, cb func(error)) {
	if err := ctx.Err(); err != nil {
		cb(err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	d, err := h.disk(childIdx)
	if err != nil {
		cb(err)
		return
	}

	switch op {
	case draid.OpWrite:
		cb(d.writeAt(physOffset, buf))
	case draid.OpRead, draid.OpScrub, draid.OpResilver:
		cb(d.readAt(physOffset, buf))
	default:
		cb(fmt.Errorf("%w: simulate harness does not model op %s", draid.ErrNotSupported, op))
	}
}

// ChildReadable implements draid.ChildState.
func (h *Harness) ChildReadable(childIdx uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	d, err := h.disk(childIdx)
	return err == nil && !d.Faulted
}

// ChildWritable implements draid.ChildState.
func (h *Harness) ChildWritable(childIdx uint64) bool {
	return h.ChildReadable(childIdx)
}

// ChildIsFaulted implements draid.ChildState.
func (h *Harness) ChildIsFaulted(childIdx uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	d, err := h.disk(childIdx)
	return err == nil && d.Faulted
}

// ChildDTLContains implements draid.DirtyTimeLog. The simulated log
// only tracks a MISSING marker per (child, txg); PARTIAL queries share
// the same table since the harness has no finer-grained resilver state.
func (h *Harness) ChildDTLContains(childIdx uint64, kind draid.DTLKind, txg uint64, size uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	byTxg, ok := h.dtl[childIdx]
	if !ok {
		return false
	}
	return byTxg[txg]
}

// FailChild marks a child faulted and zeroes its backing store,
// mirroring raid.RAIDController.ClearDisk.
func (h *Harness) FailChild(childIdx uint64, sinceTxg uint64) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	d, err := h.disk(childIdx)
	if err != nil {
		return err
	}
	d.clear()
	if h.dtl[childIdx] == nil {
		h.dtl[childIdx] = make(map[uint64]bool)
	}
	h.dtl[childIdx][sinceTxg] = true
	logrus.WithFields(logrus.Fields{"child": childIdx, "txg": sinceTxg}).Warn("child marked faulted")
	return nil
}

// HealChild clears a child's faulted state and its dirty-time log,
// simulating a completed resilver.
func (h *Harness) HealChild(childIdx uint64) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	d, err := h.disk(childIdx)
	if err != nil {
		return err
	}
	d.heal()
	delete(h.dtl, childIdx)
	logrus.WithField("child", childIdx).Info("child healed")
	return nil
}

// NChildren returns the number of simulated children.
func (h *Harness) NChildren() int {
	return len(h.disks)
}
