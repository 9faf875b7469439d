package draid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_ValidGeometry(t *testing.T) {
	// C=11, p=1, s=2, d=8, ashift=12 -- the spec's E1/E2/E3 geometry.
	cfg, err := NewConfig(11, 1, 2, 8, 1, 12)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, uint64(9), cfg.GroupWidth())
	assert.Equal(t, uint64(9), cfg.NDisks())
	assert.Equal(t, uint64(9*RowSize), cfg.GroupSize())
}

func TestNewConfig_Validation(t *testing.T) {
	t.Run("TooFewChildren", func(t *testing.T) {
		_, err := NewConfig(1, 1, 0, 1, 1, 12)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("TooManyChildren", func(t *testing.T) {
		_, err := NewConfig(300, 1, 0, 1, 1, 12)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("ParityOutOfRange", func(t *testing.T) {
		_, err := NewConfig(11, 4, 2, 8, 1, 12)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("SparesTooMany", func(t *testing.T) {
		_, err := NewConfig(11, 1, 11, 8, 1, 12)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("GroupWidthExceedsDisks", func(t *testing.T) {
		_, err := NewConfig(11, 1, 2, 20, 1, 12)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("GroupsDontDivideEvenly", func(t *testing.T) {
		_, err := NewConfig(14, 2, 2, 8, 3, 12)
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestConfig_ASizePSizeRoundTrip(t *testing.T) {
	cfg, err := NewConfig(11, 1, 2, 8, 1, 12)
	require.NoError(t, err)

	unit := cfg.NData() << cfg.Ashift()
	for n := uint64(1); n <= 5; n++ {
		x := n * unit
		asize := cfg.ASize(x)
		psize, err := cfg.PSize(asize)
		require.NoError(t, err)
		assert.Equal(t, x, psize)
	}
}

func TestConfig_AStartAlignment(t *testing.T) {
	cfg, err := NewConfig(11, 1, 2, 8, 1, 12)
	require.NoError(t, err)

	align := cfg.GroupWidth() << cfg.Ashift()
	for _, l := range []uint64{0, 1, align - 1, align, align + 1} {
		a := cfg.AStart(l)
		assert.GreaterOrEqual(t, a, l)
		assert.Zero(t, a%align)
	}
}

func TestConfig_PSize_RequiresGroupWidthMultiple(t *testing.T) {
	cfg, err := NewConfig(11, 1, 2, 8, 1, 12)
	require.NoError(t, err)

	_, err = cfg.PSize(cfg.GroupWidth() + 1)
	assert.ErrorIs(t, err, ErrInvalid)
}
