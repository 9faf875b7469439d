package draid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupMap(t *testing.T) {
	t.Run("KnownChildCount", func(t *testing.T) {
		seed, checksum, nperms, err := LookupMap(2)
		require.NoError(t, err)
		assert.NotZero(t, seed)
		assert.NotZero(t, checksum)
		assert.NotZero(t, nperms)
	})

	t.Run("UnsupportedChildCount", func(t *testing.T) {
		_, _, _, err := LookupMap(1)
		assert.ErrorIs(t, err, ErrNoEntry)

		_, _, _, err = LookupMap(1000)
		assert.ErrorIs(t, err, ErrNoEntry)
	})
}

func TestNewPermMap_RowsArePermutations(t *testing.T) {
	for _, children := range []uint64{2, 3, 5, 11, 17} {
		children := children
		t.Run("", func(t *testing.T) {
			m, err := NewPermMap(children)
			require.NoError(t, err)
			require.NotNil(t, m)

			assert.Equal(t, children, m.Children())

			for r := uint64(0); r < m.NumPerms(); r++ {
				row := m.perms[r*children : (r+1)*children]
				seen := make([]bool, children)
				for _, v := range row {
					require.Less(t, uint64(v), children)
					require.False(t, seen[v], "duplicate value %d in row %d", v, r)
					seen[v] = true
				}
			}
		})
	}
}

func TestGenerateMap_WrongChecksum(t *testing.T) {
	seed, _, nperms, err := LookupMap(5)
	require.NoError(t, err)

	_, err = GenerateMap(5, seed, 0xdeadbeef, nperms)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestGenerateMap_InvalidChildren(t *testing.T) {
	_, err := GenerateMap(1, 0, 0, 10)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = GenerateMap(300, 0, 0, 10)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestPermuteID_PermutesWithinRange(t *testing.T) {
	m, err := NewPermMap(11)
	require.NoError(t, err)

	base, iter := m.getPerm(0)
	seen := make(map[uint64]bool)
	for col := uint64(0); col < m.Children(); col++ {
		id := m.permuteID(base, iter, col)
		assert.Less(t, id, m.Children())
		assert.False(t, seen[id])
		seen[id] = true
	}
}
