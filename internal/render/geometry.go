package render

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampRadii limits each corner radius to half the square's side, so
// rounding can never exceed the side length.
func clampRadii(radii CornerRadii, side float64) CornerRadii {
	for i, r := range radii {
		radii[i] = clamp(r, 0, side/2)
	}
	return radii
}

// drawRoundedSquare traces a square of the given side with per-corner
// radii (top-left, top-right, bottom-right, bottom-left) and either
// fills it or strokes its outline. The stroke is inset by half the line
// width so its outside edge aligns with the square's bounds. A corner
// with radius zero stays a sharp right angle.
//
// x, y, side, lineWidth and radii are logical units. The context's
// scale matrix transforms path points but not line widths, so the
// stroke width is converted to device pixels with ratio here.
func drawRoundedSquare(dc *gg.Context, x, y, side, lineWidth, ratio float64, radii CornerRadii, col color.Color, fill bool) {
	dc.Push()
	defer dc.Pop()

	dc.SetColor(col)
	dc.SetLineWidth(lineWidth * ratio)

	radii = clampRadii(radii, side)

	x += lineWidth / 2
	y += lineWidth / 2
	side -= lineWidth

	dc.MoveTo(x+radii[0], y)
	dc.LineTo(x+side-radii[1], y)
	if radii[1] > 0 {
		dc.DrawArc(x+side-radii[1], y+radii[1], radii[1], -math.Pi/2, 0)
	}
	dc.LineTo(x+side, y+side-radii[2])
	if radii[2] > 0 {
		dc.DrawArc(x+side-radii[2], y+side-radii[2], radii[2], 0, math.Pi/2)
	}
	dc.LineTo(x+radii[3], y+side)
	if radii[3] > 0 {
		dc.DrawArc(x+radii[3], y+side-radii[3], radii[3], math.Pi/2, math.Pi)
	}
	dc.LineTo(x, y+radii[0])
	if radii[0] > 0 {
		dc.DrawArc(x+radii[0], y+radii[0], radii[0], math.Pi, 3*math.Pi/2)
	}
	dc.ClosePath()

	if fill {
		dc.Fill()
	} else {
		dc.Stroke()
	}
}

// fillDot paints a filled circle.
func fillDot(dc *gg.Context, cx, cy, r float64, col color.Color) {
	dc.Push()
	defer dc.Pop()
	dc.SetColor(col)
	dc.DrawCircle(cx, cy, r)
	dc.Fill()
}

// fillEllipse paints a filled axis-aligned ellipse.
func fillEllipse(dc *gg.Context, cx, cy, rx, ry float64, col color.Color) {
	dc.Push()
	defer dc.Pop()
	dc.SetColor(col)
	dc.DrawEllipse(cx, cy, rx, ry)
	dc.Fill()
}

// fillRect paints a filled rectangle.
func fillRect(dc *gg.Context, x, y, w, h float64, col color.Color) {
	dc.Push()
	defer dc.Pop()
	dc.SetColor(col)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()
}
