package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeProducesSquareMatrix(t *testing.T) {
	t.Parallel()

	enc, err := encode(utf16to8("TEST"), ECMedium)
	require.NoError(t, err)

	n := enc.ModuleCount()
	assert.GreaterOrEqual(t, n, 21, "smallest QR version is 21 modules")
	assert.Equal(t, 0, (n-17)%4, "QR dimensions are 4v+17")

	// Finder pattern corners are always dark.
	assert.True(t, enc.IsDark(0, 0))
	assert.True(t, enc.IsDark(0, n-1))
	assert.True(t, enc.IsDark(n-1, 0))

	// Out-of-range lookups are light, not panics.
	assert.False(t, enc.IsDark(-1, 0))
	assert.False(t, enc.IsDark(0, n))
}

func TestEncodeHigherECNeverShrinks(t *testing.T) {
	t.Parallel()

	data := utf16to8(strings.Repeat("https://qrpaint.dev/", 4))

	low, err := encode(data, ECLow)
	require.NoError(t, err)
	high, err := encode(data, ECHighest)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, high.ModuleCount(), low.ModuleCount())
}
