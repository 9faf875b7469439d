package draid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupDevices_DisjointAndExcludesSpares(t *testing.T) {
	cfg, err := NewConfig(11, 1, 2, 8, 1, 12)
	require.NoError(t, err)

	offsets := []uint64{0, cfg.GroupSize(), cfg.GroupSize() * 2}
	for _, off := range offsets {
		devices := cfg.GroupDevices(off)
		assert.Len(t, devices, int(cfg.GroupWidth()))

		seen := make(map[uint64]bool)
		for _, d := range devices {
			assert.False(t, seen[d], "device %d appears twice in group at offset %d", d, off)
			seen[d] = true
			assert.Less(t, d, cfg.Children())
		}

		_, perm, _ := cfg.LogicalToPhysical(off)
		spares := cfg.SpareDevices(perm)
		for _, s := range spares {
			assert.False(t, seen[s], "spare device %d also appears in group devices", s)
		}
	}
}

func TestOffsetToGroup_NonSpanning(t *testing.T) {
	cfg, err := NewConfig(11, 1, 2, 8, 1, 12)
	require.NoError(t, err)

	off := cfg.AStart(0)
	size := cfg.NData() << cfg.Ashift()
	assert.True(t, cfg.FitsInGroup(off, size))

	g0 := cfg.OffsetToGroup(off)
	g1 := cfg.OffsetToGroup(off + size - 1)
	assert.Equal(t, g0, g1)
}

func TestGroupToOffset_RoundTrip(t *testing.T) {
	cfg, err := NewConfig(11, 1, 2, 8, 1, 12)
	require.NoError(t, err)

	for g := uint64(0); g < 5; g++ {
		off := cfg.GroupToOffset(g)
		assert.Equal(t, g, cfg.OffsetToGroup(off))
	}
}

func TestSpareDevices_Count(t *testing.T) {
	cfg, err := NewConfig(11, 1, 2, 8, 1, 12)
	require.NoError(t, err)

	spares := cfg.SpareDevices(0)
	assert.Len(t, spares, int(cfg.NSpares()))
}
