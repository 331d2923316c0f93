package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleRectTilesWithoutGaps(t *testing.T) {
	t.Parallel()

	// Non-integer cell sizes are the interesting case: each edge is
	// rounded independently, so consecutive modules must still cover
	// the row without a gap.
	for _, cell := range []float64{100.0 / 21, 150.0 / 29, 333.0 / 25, 7.5} {
		for col := 0; col < 40; col++ {
			x, _, w, _ := moduleRect(0, col, cell, 0)
			nx, _, _, _ := moduleRect(0, col+1, cell, 0)
			assert.LessOrEqual(t, nx, x+w, "gap between modules %d and %d at cell %f", col, col+1, cell)
			assert.LessOrEqual(t, x+w-nx, 2.0, "excessive overlap at cell %f", cell)
		}
	}
}

func TestModuleRectOffset(t *testing.T) {
	t.Parallel()

	x, y, _, _ := moduleRect(0, 0, 10, 40)
	assert.Equal(t, 40.0, x)
	assert.Equal(t, 40.0, y)
}

func TestModuleRectIntegerBounds(t *testing.T) {
	t.Parallel()

	// All bounds snap to whole pixels regardless of the cell size.
	for col := 0; col < 30; col++ {
		x, y, w, h := moduleRect(col, col, 100.0/21, 10)
		assert.Equal(t, float64(int(x)), x)
		assert.Equal(t, float64(int(y)), y)
		assert.Equal(t, float64(int(w)), w)
		assert.Equal(t, float64(int(h)), h)
	}
}

func TestInEyeZone(t *testing.T) {
	t.Parallel()

	const n = 21
	zones := eyeZones(n)
	require.Equal(t, coordinate{0, 0}, zones[0])
	require.Equal(t, coordinate{0, 14}, zones[1])
	require.Equal(t, coordinate{14, 0}, zones[2])

	assert.True(t, inEyeZone(0, 0, zones))
	assert.True(t, inEyeZone(7, 7, zones), "separator band is part of the footprint")
	assert.False(t, inEyeZone(8, 8, zones))
	assert.False(t, inEyeZone(10, 10, zones))
	assert.True(t, inEyeZone(0, 14, zones))
	assert.False(t, inEyeZone(0, 13, zones))
	assert.True(t, inEyeZone(14, 0, zones))
	assert.False(t, inEyeZone(13, 0, zones))
	assert.False(t, inEyeZone(20, 20, zones), "bottom-right corner has no eye")
}
