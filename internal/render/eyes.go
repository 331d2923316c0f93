package render

import (
	"math"

	"github.com/fogleman/gg"
)

// drawEyes renders the three positional patterns: per eye, a
// stroke-only rounded square of side 7 cells and a filled rounded
// square of side 3 cells inset by 2 cells, each with its resolved
// radius and color.
func drawEyes(dc *gg.Context, o *Options, n int, cell float64) {
	zones := eyeZones(n)
	lineWidth := math.Ceil(cell)
	offset := float64(o.quietZone)

	for i, z := range zones {
		er := o.eyeRadii[i]
		ec := o.eyeColor(i)

		x := float64(z.col)*cell + offset
		y := float64(z.row)*cell + offset

		drawRoundedSquare(dc, x, y, cell*7, lineWidth, o.pixelRatio, er.Outer, ec.Outer, false)
		drawRoundedSquare(dc, x+cell*2, y+cell*2, cell*3, lineWidth, o.pixelRatio, er.Inner, ec.Inner, true)
	}
}
