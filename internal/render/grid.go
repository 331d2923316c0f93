package render

import (
	"math"

	"github.com/fogleman/gg"
)

// dotScale shrinks dot-style modules inside their cell, leaving visible
// gaps between dots.
const dotScale = 0.75

// eyeSpan is the footprint of a positional pattern in modules,
// including the separator band next to it.
const eyeSpan = 7

type coordinate struct {
	row, col int
}

// eyeZones returns the top-left module coordinate of the three
// positional patterns for an n-module symbol.
func eyeZones(n int) [3]coordinate {
	return [3]coordinate{
		{row: 0, col: 0},
		{row: 0, col: n - eyeSpan},
		{row: n - eyeSpan, col: 0},
	}
}

// inEyeZone reports whether the cell lies inside any positional
// pattern's footprint. The bound is inclusive on both ends, which also
// covers the separator band; separators are always light so this only
// short-circuits work.
func inEyeZone(row, col int, zones [3]coordinate) bool {
	for _, z := range zones {
		if row >= z.row && row <= z.row+eyeSpan && col >= z.col && col <= z.col+eyeSpan {
			return true
		}
	}
	return false
}

// moduleRect computes the pixel bounds of a square-style module,
// rounding each edge independently so adjacent modules tile without
// seams when the cell size is not an integer.
func moduleRect(row, col int, cell, offset float64) (x, y, w, h float64) {
	x = math.Round(float64(col)*cell) + offset
	y = math.Round(float64(row)*cell) + offset
	w = math.Ceil(float64(col+1)*cell) - math.Floor(float64(col)*cell)
	h = math.Ceil(float64(row+1)*cell) - math.Floor(float64(row)*cell)
	return x, y, w, h
}

// drawModules paints every dark module outside the eye zones, as
// squares or dots depending on the configured style.
func drawModules(dc *gg.Context, enc Encoder, o *Options, cell float64) {
	n := enc.ModuleCount()
	zones := eyeZones(n)
	offset := float64(o.quietZone)

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !enc.IsDark(row, col) || inEyeZone(row, col, zones) {
				continue
			}
			if o.style == StyleDots {
				cx := math.Round(float64(col)*cell) + cell/2 + offset
				cy := math.Round(float64(row)*cell) + cell/2 + offset
				fillDot(dc, cx, cy, cell/2*dotScale, o.fgColor)
				continue
			}
			x, y, w, h := moduleRect(row, col, cell, offset)
			fillRect(dc, x, y, w, h, o.fgColor)
		}
	}
}
