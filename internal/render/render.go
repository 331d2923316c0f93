// Package render turns an encoded QR module matrix into pixels, with
// visual customization: per-eye corner rounding and colors, square or
// dot modules, quiet-zone handling, device pixel scaling, and an
// optional embedded logo with clearing behind it.
//
// Encoding is delegated to a black-box encoder (see Encoder); this
// package only decides how modules become pixels.
package render

import (
	"fmt"
	"log"
	"math"

	"github.com/fogleman/gg"
)

// maxSurfacePx caps the surface edge so a hostile size/ratio pair
// cannot exhaust memory.
const maxSurfacePx = 1 << 14

// Render encodes the configured value and draws the symbol onto a
// fresh surface. The module grid and eyes are drawn synchronously; if
// a logo is configured its load and compositing happen asynchronously
// after Render returns (use Surface.Wait). Encoder and surface
// allocation failures are fatal; a logo failure is not.
func Render(opts ...Option) (*Surface, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	enc, err := encode(utf16to8(o.value), o.ecLevel)
	if err != nil {
		return nil, err
	}
	n := enc.ModuleCount()
	cell := float64(o.size) / float64(n)

	canvas := o.size + 2*o.quietZone
	edge := int(math.Round(float64(canvas) * o.pixelRatio))
	if edge <= 0 || edge > maxSurfacePx {
		return nil, fmt.Errorf("%w: %dx%d", ErrSurfaceCreation, edge, edge)
	}

	dc := gg.NewContext(edge, edge)
	dc.Scale(o.pixelRatio, o.pixelRatio)
	dc.SetColor(o.bgColor)
	dc.Clear()

	drawModules(dc, enc, o, cell)
	drawEyes(dc, o, n, cell)

	s := newSurface(dc)
	if o.logo.source == "" {
		s.finishLogo(nil)
		return s, nil
	}

	// The compositor only runs inside this goroutine, so grid and eyes
	// are always fully drawn before any logo pixel lands.
	place := o.logoPlacement()
	source := o.logo.source
	cors := o.logo.enableCORS
	onLoad := o.onLogoLoad
	go func() {
		logo, err := loadLogo(source, cors)
		if err != nil {
			lerr := &LogoLoadError{Source: source, Err: err}
			log.Printf("qrpaint: %v", lerr)
			s.finishLogo(lerr)
			if onLoad != nil {
				onLoad(lerr)
			}
			return
		}
		compositeLogo(dc, logo, place)
		s.finishLogo(nil)
		if onLoad != nil {
			onLoad(nil)
		}
	}()
	return s, nil
}
