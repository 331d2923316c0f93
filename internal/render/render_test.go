package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// moduleCount renders the same payload through the encoder alone, so
// pixel assertions can be phrased in cell units.
func moduleCount(t *testing.T, value string, level ECLevel) int {
	t.Helper()
	enc, err := encode(utf16to8(value), level)
	require.NoError(t, err)
	return enc.ModuleCount()
}

func pixelNear(img image.Image, x, y int, want color.RGBA) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	wr, wg, wb, _ := want.RGBA()
	near := func(a, b uint32) bool {
		d := int64(a) - int64(b)
		if d < 0 {
			d = -d
		}
		return d < 0x2000
	}
	return near(r, wr) && near(g, wg) && near(b, wb)
}

func TestRenderSurfaceDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
		edge int
	}{
		{name: "defaults", opts: nil, edge: 170},
		{name: "no quiet zone", opts: []Option{WithSize(100), WithQuietZone(0)}, edge: 100},
		{
			name: "pixel ratio scales the surface",
			opts: []Option{WithSize(100), WithQuietZone(10), WithPixelRatio(2)},
			edge: 240,
		},
		{
			name: "fractional ratio rounds",
			opts: []Option{WithSize(100), WithQuietZone(0), WithPixelRatio(1.5)},
			edge: 150,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := Render(tt.opts...)
			require.NoError(t, err)
			bounds := s.Image().Bounds()
			assert.Equal(t, tt.edge, bounds.Dx())
			assert.Equal(t, tt.edge, bounds.Dy())
		})
	}
}

func TestRenderSurfaceTooLarge(t *testing.T) {
	t.Parallel()

	_, err := Render(WithSize(20000))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSurfaceCreation)
}

func TestRenderEyeAndQuietZonePixels(t *testing.T) {
	t.Parallel()

	const value = "TEST"
	n := moduleCount(t, value, ECMedium)
	size := n * 10 // integer cell size keeps pixel positions exact

	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	s, err := Render(WithValue(value), WithSize(size), WithQuietZone(10))
	require.NoError(t, err)
	require.NoError(t, s.Wait(context.Background()))
	img := s.Image()

	// Quiet zone stays background-colored.
	assert.True(t, pixelNear(img, 2, 2, white))
	assert.True(t, pixelNear(img, size+17, 2, white))

	// Center of each eye's inner square, in canvas coordinates.
	cell := 10
	inner := func(row, col int) (int, int) {
		return col*cell + cell*7/2 + 10, row*cell + cell*7/2 + 10
	}
	for _, z := range eyeZones(n) {
		x, y := inner(z.row, z.col)
		assert.True(t, pixelNear(img, x, y, black), "inner eye at zone %v", z)
	}

	// Separator ring between the two eye squares is background.
	x := 0*cell + cell*3/2 + 10
	y := 0*cell + cell*7/2 + 10
	assert.True(t, pixelNear(img, x, y, white), "gap between outer ring and inner square")
}

func TestRenderCustomColors(t *testing.T) {
	t.Parallel()

	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	green := color.RGBA{0, 128, 0, 255}

	n := moduleCount(t, "TEST", ECMedium)
	s, err := Render(
		WithValue("TEST"),
		WithSize(n*10),
		WithQuietZone(0),
		WithFgColor(red),
		WithBgColor(blue),
		WithEyeColorPair(green, green),
	)
	require.NoError(t, err)
	img := s.Image()

	// First timing-pattern module (row 6, col 8) is always dark and
	// never inside an eye.
	assert.True(t, pixelNear(img, 85, 65, red))
	// Light module right after it.
	assert.True(t, pixelNear(img, 95, 65, blue))
	// Eye pixels pick up the eye color, not the foreground.
	assert.True(t, pixelNear(img, 35, 35, green))
}

func TestRenderDotsStyle(t *testing.T) {
	t.Parallel()

	n := moduleCount(t, "TEST", ECMedium)
	render := func(style Style) image.Image {
		s, err := Render(
			WithValue("TEST"),
			WithSize(n*10),
			WithQuietZone(0),
			WithStyle(style),
		)
		require.NoError(t, err)
		return s.Image()
	}

	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	squares := render(StyleSquares)
	dots := render(StyleDots)

	// Module (6,8): center is dark either way, but the module's corner
	// is only covered by the square variant.
	assert.True(t, pixelNear(squares, 85, 65, black))
	assert.True(t, pixelNear(dots, 85, 65, black))
	assert.True(t, pixelNear(squares, 81, 61, black))
	assert.True(t, pixelNear(dots, 81, 61, white))

	// Eyes keep their shape regardless of module style.
	assert.True(t, pixelNear(dots, 35, 35, black))
}

func TestRenderEyeRingPixelRatio(t *testing.T) {
	t.Parallel()

	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	n := moduleCount(t, "TEST", ECMedium)
	render := func(ratio float64) image.Image {
		s, err := Render(
			WithValue("TEST"),
			WithSize(n*10),
			WithQuietZone(0),
			WithPixelRatio(ratio),
		)
		require.NoError(t, err)
		return s.Image()
	}

	// The outer ring's stroke covers the logical band [0,10) at any
	// ratio, so a ratio-2 render is the ratio-1 render scaled: logical
	// (2,2) and (8,8) map to device (4,4) and (16,16).
	base := render(1)
	assert.True(t, pixelNear(base, 2, 2, black))
	assert.True(t, pixelNear(base, 8, 8, black))

	scaled := render(2)
	assert.True(t, pixelNear(scaled, 4, 4, black))
	assert.True(t, pixelNear(scaled, 16, 16, black))

	// The separator gap between ring and inner square stays clear, so
	// the thicker stroke did not bleed inward.
	assert.True(t, pixelNear(scaled, 30, 70, white))
}

func TestRenderEyeRadiusClampsToHalfSide(t *testing.T) {
	t.Parallel()

	n := moduleCount(t, "TEST", ECMedium)
	size := n * 10
	cell := float64(size) / float64(n)

	png := func(r float64) []byte {
		s, err := Render(WithValue("TEST"), WithSize(size), WithEyeRadius(r))
		require.NoError(t, err)
		b, err := s.PNG()
		require.NoError(t, err)
		return b
	}

	// Any radius beyond half the outer square's side renders identically
	// to the maximum: a fully-round eye.
	assert.Equal(t, png(3.5*cell), png(10000))
}

func TestRenderRoundedEyeCornersAreBackground(t *testing.T) {
	t.Parallel()

	n := moduleCount(t, "TEST", ECMedium)
	s, err := Render(
		WithValue("TEST"),
		WithSize(n*10),
		WithQuietZone(0),
		WithEyeRadius(3.5*10),
	)
	require.NoError(t, err)

	// With fully-round eyes the outer square's corner pixel is empty.
	white := color.RGBA{255, 255, 255, 255}
	assert.True(t, pixelNear(s.Image(), 2, 2, white))
}

func TestRenderWaitWithoutLogo(t *testing.T) {
	t.Parallel()

	s, err := Render()
	require.NoError(t, err)
	assert.NoError(t, s.Wait(context.Background()))
}

func TestSurfaceExports(t *testing.T) {
	t.Parallel()

	s, err := Render(WithSize(80), WithQuietZone(0))
	require.NoError(t, err)

	png, err := s.PNG()
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(png[:4]))

	uri, err := s.DataURI()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}

func TestRenderEncoderFailure(t *testing.T) {
	t.Parallel()

	// Version 40 at the highest EC level holds 1273 bytes; anything
	// beyond that cannot be encoded.
	_, err := Render(WithValue(strings.Repeat("x", 4000)), WithECLevel(ECHighest))
	assert.Error(t, err)

	var lerr *LogoLoadError
	assert.False(t, errors.As(err, &lerr))
}
