package draid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memChild is a minimal ChildEnvironment backed by flat byte slices,
// used only to exercise Dispatcher without pulling in internal/simulate
// (which itself depends on this package).
type memChild struct {
	disks   [][]byte
	faulted map[uint64]bool
}

func newMemChild(n int, size int) *memChild {
	disks := make([][]byte, n)
	for i := range disks {
		disks[i] = make([]byte, size)
	}
	return &memChild{disks: disks, faulted: make(map[uint64]bool)}
}

func (m *memChild) ChildIO(ctx context.Context, childIdx uint64, physOffset uint64, buf []byte, op Op, cb func(error)) {
	if m.faulted[childIdx] {
		cb(ErrIO)
		return
	}
	d := m.disks[childIdx]
	switch op {
	case OpWrite:
		copy(d[physOffset:], buf)
	case OpRead, OpScrub, OpResilver:
		copy(buf, d[physOffset:physOffset+uint64(len(buf))])
	}
	cb(nil)
}

func (m *memChild) ChildReadable(childIdx uint64) bool  { return !m.faulted[childIdx] }
func (m *memChild) ChildWritable(childIdx uint64) bool  { return !m.faulted[childIdx] }
func (m *memChild) ChildIsFaulted(childIdx uint64) bool { return m.faulted[childIdx] }
func (m *memChild) ChildDTLContains(childIdx uint64, kind DTLKind, txg uint64, size uint64) bool {
	return m.faulted[childIdx]
}

func TestDispatcher_WriteThenRead(t *testing.T) {
	cfg, err := NewConfig(11, 1, 2, 8, 1, 12)
	require.NoError(t, err)

	parity, err := NewParity(cfg.NData(), cfg.NParity())
	require.NoError(t, err)

	env := newMemChild(int(cfg.Children()), int(cfg.GroupSize()))
	d := NewDispatcher(cfg, parity, env)

	payload := make([]byte, 32*1024)
	for i := range payload {
		payload[i] = byte(i)
	}

	writeSM, err := cfg.BuildWriteStripe(0, payload)
	require.NoError(t, err)

	originalData := make([][]byte, len(writeSM.DataColumns()))
	for i, col := range writeSM.DataColumns() {
		originalData[i] = append([]byte(nil), col.Buffer...)
	}

	require.NoError(t, parity.Generate(writeSM))

	for i, col := range writeSM.DataColumns() {
		assert.Equal(t, originalData[i], col.Buffer, "Generate must not alter data columns")
	}

	result, err := d.Dispatch(context.Background(), writeSM, OpWrite, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, result.FailedColumns)

	readSM, err := cfg.BuildReadStripe(0, uint64(len(payload)))
	require.NoError(t, err)

	result, err = d.Dispatch(context.Background(), readSM, OpRead, 0, nil)
	require.NoError(t, err)
	assert.False(t, result.Reconstructed)

	for i, col := range readSM.DataColumns() {
		assert.Equal(t, originalData[i], col.Buffer)
	}
}

func TestDispatcher_ReadReconstructsOnSingleFailure(t *testing.T) {
	cfg, err := NewConfig(11, 1, 2, 8, 1, 12)
	require.NoError(t, err)

	parity, err := NewParity(cfg.NData(), cfg.NParity())
	require.NoError(t, err)

	env := newMemChild(int(cfg.Children()), int(cfg.GroupSize()))
	d := NewDispatcher(cfg, parity, env)

	payload := make([]byte, 32*1024)
	for i := range payload {
		payload[i] = byte(i * 3)
	}

	writeSM, err := cfg.BuildWriteStripe(0, payload)
	require.NoError(t, err)
	require.NoError(t, parity.Generate(writeSM))
	_, err = d.Dispatch(context.Background(), writeSM, OpWrite, 0, nil)
	require.NoError(t, err)

	failedDevice := writeSM.Columns[2].DevIdx
	env.faulted[failedDevice] = true

	readSM, err := cfg.BuildReadStripe(0, uint64(len(payload)))
	require.NoError(t, err)

	result, err := d.Dispatch(context.Background(), readSM, OpRead, 0, nil)
	require.NoError(t, err)
	assert.True(t, result.Reconstructed)

	for i, col := range readSM.DataColumns() {
		assert.Equal(t, writeSM.DataColumns()[i].Buffer, col.Buffer)
	}
}

func TestDispatcher_ReadFailsWhenTooManyMissing(t *testing.T) {
	cfg, err := NewConfig(14, 2, 2, 10, 1, 12)
	require.NoError(t, err)

	parity, err := NewParity(cfg.NData(), cfg.NParity())
	require.NoError(t, err)

	env := newMemChild(int(cfg.Children()), int(cfg.GroupSize()))
	d := NewDispatcher(cfg, parity, env)

	payload := make([]byte, 4*4096)
	writeSM, err := cfg.BuildWriteStripe(0, payload)
	require.NoError(t, err)
	require.NoError(t, parity.Generate(writeSM))
	_, err = d.Dispatch(context.Background(), writeSM, OpWrite, 0, nil)
	require.NoError(t, err)

	for _, i := range []int{2, 3, 4} {
		env.faulted[writeSM.Columns[i].DevIdx] = true
	}

	readSM, err := cfg.BuildReadStripe(0, uint64(len(payload)))
	require.NoError(t, err)

	_, err = d.Dispatch(context.Background(), readSM, OpRead, 0, nil)
	assert.Error(t, err)
}

func TestDispatcher_WriteFailsWhenTooManyChildrenFail(t *testing.T) {
	cfg, err := NewConfig(11, 1, 2, 8, 1, 12)
	require.NoError(t, err)

	parity, err := NewParity(cfg.NData(), cfg.NParity())
	require.NoError(t, err)

	env := newMemChild(int(cfg.Children()), int(cfg.GroupSize()))
	d := NewDispatcher(cfg, parity, env)

	writeSM, err := cfg.BuildWriteStripe(0, make([]byte, 32*1024))
	require.NoError(t, err)
	require.NoError(t, parity.Generate(writeSM))

	env.faulted[writeSM.Columns[0].DevIdx] = true
	env.faulted[writeSM.Columns[1].DevIdx] = true

	_, err = d.Dispatch(context.Background(), writeSM, OpWrite, 0, nil)
	assert.ErrorIs(t, err, ErrIO)
}
