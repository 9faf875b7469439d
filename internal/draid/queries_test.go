package draid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignRange(t *testing.T) {
	cfg, err := NewConfig(11, 1, 2, 8, 1, 12)
	require.NoError(t, err)

	chunk := cfg.GroupWidth() << cfg.Ashift()

	t.Run("AlreadyAligned", func(t *testing.T) {
		start, size := cfg.AlignRange(0, chunk*3)
		assert.Equal(t, uint64(0), start)
		assert.Equal(t, chunk*3, size)
	})

	t.Run("PartialHeadAndTailTrimmed", func(t *testing.T) {
		start, size := cfg.AlignRange(1, chunk*3)
		assert.Equal(t, chunk, start)
		assert.Equal(t, chunk*2, size)
	})

	t.Run("TooSmallCollapsesToZero", func(t *testing.T) {
		_, size := cfg.AlignRange(1, 1)
		assert.Equal(t, uint64(0), size)
	})
}

func TestBlockSizePolicy(t *testing.T) {
	cfg, err := NewConfig(11, 1, 2, 8, 1, 12)
	require.NoError(t, err)

	policy := cfg.BlockSizePolicy()
	assert.Equal(t, uint64(1), policy.MinSectors)
	assert.Greater(t, policy.MaxSectors, policy.MinSectors)
}

func TestFitsInGroup(t *testing.T) {
	cfg, err := NewConfig(11, 1, 2, 8, 1, 12)
	require.NoError(t, err)

	t.Run("ZeroSizeAlwaysFits", func(t *testing.T) {
		assert.True(t, cfg.FitsInGroup(12345, 0))
	})

	t.Run("WithinSingleGroup", func(t *testing.T) {
		assert.True(t, cfg.FitsInGroup(0, 1))
	})

	t.Run("SpanningGroupsDoesNotFit", func(t *testing.T) {
		groupSize := cfg.GroupSize()
		assert.False(t, cfg.FitsInGroup(groupSize-1, 2))
	})
}
