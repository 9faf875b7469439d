package simulate

import (
	"context"
	"testing"

	"github.com/dparity/draid/internal/draid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarness_WriteReadRoundTrip(t *testing.T) {
	h := NewHarness(4, 1024)

	payload := []byte("hello dRAID")
	buf := make([]byte, len(payload))
	copy(buf, payload)

	var writeErr error
	h.ChildIO(context.Background(), 0, 0, buf, draid.OpWrite, func(err error) {
		writeErr = err
	})
	require.NoError(t, writeErr)

	readBuf := make([]byte, len(payload))
	var readErr error
	h.ChildIO(context.Background(), 0, 0, readBuf, draid.OpRead, func(err error) {
		readErr = err
	})
	require.NoError(t, readErr)
	assert.Equal(t, payload, readBuf)
}

func TestHarness_FailChild(t *testing.T) {
	h := NewHarness(4, 1024)

	require.NoError(t, h.FailChild(1, 5))
	assert.True(t, h.ChildIsFaulted(1))
	assert.False(t, h.ChildReadable(1))
	assert.True(t, h.ChildDTLContains(1, draid.DTLMissing, 5, 1))
	assert.False(t, h.ChildDTLContains(1, draid.DTLMissing, 6, 1))

	var ioErr error
	h.ChildIO(context.Background(), 1, 0, make([]byte, 8), draid.OpRead, func(err error) {
		ioErr = err
	})
	assert.Error(t, ioErr)
}

func TestHarness_HealChild(t *testing.T) {
	h := NewHarness(4, 1024)
	require.NoError(t, h.FailChild(2, 1))
	require.NoError(t, h.HealChild(2))

	assert.False(t, h.ChildIsFaulted(2))
	assert.True(t, h.ChildReadable(2))
	assert.False(t, h.ChildDTLContains(2, draid.DTLMissing, 1, 1))
}

func TestHarness_OutOfRangeChild(t *testing.T) {
	h := NewHarness(2, 64)

	var ioErr error
	h.ChildIO(context.Background(), 5, 0, make([]byte, 1), draid.OpRead, func(err error) {
		ioErr = err
	})
	assert.ErrorIs(t, ioErr, draid.ErrInvalid)
}

func TestHarness_ContextCanceled(t *testing.T) {
	h := NewHarness(2, 64)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ioErr error
	h.ChildIO(ctx, 0, 0, make([]byte, 1), draid.OpWrite, func(err error) {
		ioErr = err
	})
	assert.Error(t, ioErr)
}

func TestHarness_NChildren(t *testing.T) {
	h := NewHarness(7, 64)
	assert.Equal(t, 7, h.NChildren())
}

func TestHarness_WriteOutOfBounds(t *testing.T) {
	h := NewHarness(1, 16)

	var ioErr error
	h.ChildIO(context.Background(), 0, 10, make([]byte, 10), draid.OpWrite, func(err error) {
		ioErr = err
	})
	assert.Error(t, ioErr)
}
