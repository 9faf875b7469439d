package draid

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// VerifyFunc checks the caller's own checksum over a stripe's data
// columns. The core never computes this itself; checksum algorithms
// live above the dRAID layer. A nil VerifyFunc is treated as always
// passing, useful for tests that only care about parity behavior.
type VerifyFunc func(sm *StripeMap) bool

// Dispatcher issues per-column child I/O for a built StripeMap and
// decides parent completion per spec.md §4.6.
type Dispatcher struct {
	cfg    *Config
	parity *Parity
	env    ChildEnvironment
	log    *logrus.Entry
}

// NewDispatcher binds a Dispatcher to one dRAID geometry, its parity
// engine, and the surrounding runtime's child collaborators.
func NewDispatcher(cfg *Config, parity *Parity, env ChildEnvironment) *Dispatcher {
	return &Dispatcher{
		cfg:    cfg,
		parity: parity,
		env:    env,
		log:    logrus.WithField("component", "dispatcher"),
	}
}

// Dispatch issues the stripe's columns against the child environment
// and resolves the parent I/O's completion status.
func (d *Dispatcher) Dispatch(ctx context.Context, sm *StripeMap, op Op, flags Flags, verify VerifyFunc) (*IOResult, error) {
	switch op {
	case OpWrite:
		return d.dispatchWrite(ctx, sm)
	case OpRead:
		return d.dispatchRead(ctx, sm, verify)
	case OpScrub, OpResilver:
		return d.dispatchScrub(ctx, sm, op)
	default:
		return nil, fmt.Errorf("%w: dispatcher does not handle op %s", ErrNotSupported, op)
	}
}

// dispatchWrite issues every column (data, parity, and skip sectors)
// concurrently. Skip-sector columns are written because scrub and
// parity reconstruction both read them back later.
func (d *Dispatcher) dispatchWrite(ctx context.Context, sm *StripeMap) (*IOResult, error) {
	idx := make([]int, 0, len(sm.Columns))
	for i := range sm.Columns {
		idx = append(idx, i)
	}

	completed := d.issue(ctx, sm, idx, OpWrite)
	failed := failedColumns(sm, idx)

	threshold := len(sm.Columns) - int(d.cfg.nparity)
	if completed < threshold && ctx.Err() != nil {
		return &IOResult{Status: ErrCanceled, FailedColumns: failed}, ErrCanceled
	}
	if len(failed) > int(d.cfg.nparity) {
		return &IOResult{Status: ErrIO, FailedColumns: failed}, fmt.Errorf("%w: %d of %d columns failed to write", ErrIO, len(failed), len(sm.Columns))
	}

	return &IOResult{Status: nil, FailedColumns: failed}, nil
}

// dispatchRead issues data columns last-to-first: the convention
// ensures that, when a caller short-circuits on the first failure seen,
// parity (read last, only if needed) is the final thing consulted.
func (d *Dispatcher) dispatchRead(ctx context.Context, sm *StripeMap, verify VerifyFunc) (*IOResult, error) {
	dataIdx := make([]int, 0, len(sm.Columns)-sm.FirstDataCol)
	for i := len(sm.Columns) - 1; i >= sm.FirstDataCol; i-- {
		dataIdx = append(dataIdx, i)
	}

	d.issue(ctx, sm, dataIdx, OpRead)
	failed := failedColumns(sm, dataIdx)

	if len(failed) == 0 && (verify == nil || verify(sm)) {
		return &IOResult{Status: nil}, nil
	}

	if len(failed) > int(d.cfg.nparity) {
		return &IOResult{Status: ErrNoChildren, FailedColumns: failed}, fmt.Errorf("%w: %d data columns failed, only %d parity columns available", ErrNoChildren, len(failed), d.cfg.nparity)
	}

	d.log.WithFields(logrus.Fields{"failed": failed}).Info("read checksum failure, attempting reconstruction")

	// The narrow read-only stripe doesn't carry uniform column sizes
	// (empty/short columns were never scheduled), so reconstruction
	// needs the full scrub-shaped layout with skip sectors attached.
	expanded, err := d.cfg.ExpandReadStripe(sm.Offset, sm.PSize, sm)
	if err != nil {
		return &IOResult{Status: err, FailedColumns: failed}, err
	}

	parityIdx := make([]int, 0, expanded.FirstDataCol)
	for i := expanded.FirstDataCol - 1; i >= 0; i-- {
		parityIdx = append(parityIdx, i)
	}
	d.issue(ctx, expanded, parityIdx, OpRead)

	unreadData := make([]int, 0)
	for i := expanded.FirstDataCol; i < len(expanded.Columns); i++ {
		if !expanded.Columns[i].Tried {
			unreadData = append(unreadData, i)
		}
	}
	d.issue(ctx, expanded, unreadData, OpRead)

	allFailed := failedColumns(expanded, append(append([]int{}, parityIdx...), unreadData...))
	if len(allFailed) > int(d.cfg.nparity) {
		return &IOResult{Status: ErrNoChildren, FailedColumns: allFailed}, fmt.Errorf("%w: too many missing columns to reconstruct", ErrNoChildren)
	}

	if err := d.parity.Reconstruct(expanded); err != nil {
		return &IOResult{Status: err, FailedColumns: allFailed}, err
	}

	for i := expanded.FirstDataCol; i < len(expanded.Columns); i++ {
		copy(sm.Columns[i].Buffer, expanded.Columns[i].Buffer[:len(sm.Columns[i].Buffer)])
	}

	if verify != nil && !verify(sm) {
		return &IOResult{Status: ErrChecksum, FailedColumns: failed}, fmt.Errorf("%w: reconstructed stripe still fails checksum", ErrChecksum)
	}

	for _, i := range failed {
		sm.Columns[i].Repair = true
	}

	return &IOResult{Status: nil, FailedColumns: failed, Reconstructed: true}, nil
}

// dispatchScrub always reads every column, including skip sectors, and
// verifies the parity equations hold. Columns whose child is faulted
// per the surrounding environment are marked for repair regardless of
// whether their own read succeeded.
func (d *Dispatcher) dispatchScrub(ctx context.Context, sm *StripeMap, op Op) (*IOResult, error) {
	idx := make([]int, 0, len(sm.Columns))
	for i := len(sm.Columns) - 1; i >= 0; i-- {
		idx = append(idx, i)
	}

	d.issue(ctx, sm, idx, OpRead)
	failed := failedColumns(sm, idx)

	if len(failed) > int(d.cfg.nparity) {
		return &IOResult{Status: ErrNoChildren, FailedColumns: failed}, fmt.Errorf("%w: %d columns failed during %s, only %d parity columns available", ErrNoChildren, len(failed), op, d.cfg.nparity)
	}

	reconstructed := false
	if len(failed) > 0 {
		if err := d.parity.Reconstruct(sm); err != nil {
			return &IOResult{Status: err, FailedColumns: failed}, err
		}
		reconstructed = true
	} else {
		ok, err := d.parity.Verify(sm)
		if err != nil {
			return &IOResult{Status: err, FailedColumns: failed}, err
		}
		if !ok {
			if err := d.parity.Reconstruct(sm); err != nil {
				return &IOResult{Status: err, FailedColumns: failed}, err
			}
			reconstructed = true
		}
	}

	for i := range sm.Columns {
		if d.env != nil && d.env.ChildIsFaulted(sm.Columns[i].DevIdx) {
			sm.Columns[i].Repair = true
		}
	}
	for _, i := range failed {
		sm.Columns[i].Repair = true
	}

	return &IOResult{Status: nil, FailedColumns: failed, Reconstructed: reconstructed}, nil
}

// issue fires off child I/O for the given column indices concurrently
// and blocks until every one of them has invoked its callback; ctx is
// passed to the children but is not watched here. It returns the number
// that completed without error.
func (d *Dispatcher) issue(ctx context.Context, sm *StripeMap, idx []int, op Op) int {
	var wg sync.WaitGroup
	var mu sync.Mutex
	completed := 0

	for _, i := range idx {
		col := &sm.Columns[i]
		col.Tried = true

		wg.Add(1)
		d.env.ChildIO(ctx, col.DevIdx, col.PhysOffset, col.Buffer, op, func(err error) {
			defer wg.Done()
			mu.Lock()
			defer mu.Unlock()
			col.Error = err
			if err == nil {
				completed++
			}
		})
	}

	wg.Wait()
	return completed
}

func failedColumns(sm *StripeMap, idx []int) []int {
	var failed []int
	for _, i := range idx {
		if sm.Columns[i].Error != nil {
			failed = append(failed, i)
		}
	}
	return failed
}
