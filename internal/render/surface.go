package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"

	"github.com/fogleman/gg"
)

// Surface is the raster a render draws into. The module grid and eyes
// are complete by the time Render returns; when a logo is configured it
// is composited asynchronously, and readers should Wait before
// exporting pixels. Each render owns its surface exclusively.
type Surface struct {
	dc       *gg.Context
	logoDone chan struct{}
	logoErr  error
}

func newSurface(dc *gg.Context) *Surface {
	return &Surface{dc: dc, logoDone: make(chan struct{})}
}

// finishLogo records the outcome of the logo phase. Called exactly once.
func (s *Surface) finishLogo(err error) {
	s.logoErr = err
	close(s.logoDone)
}

// Image exposes the raw pixel surface for embedding in a larger
// rendering context.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// PNG serializes the surface to PNG bytes.
func (s *Surface) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURI serializes the surface to a self-contained image data URI.
func (s *Surface) DataURI() (string, error) {
	png, err := s.PNG()
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// Wait blocks until logo compositing settles (immediately when no logo
// is configured). A returned *LogoLoadError is non-fatal: the surface
// is complete except for the logo.
func (s *Surface) Wait(ctx context.Context) error {
	select {
	case <-s.logoDone:
		return s.logoErr
	case <-ctx.Done():
		return ctx.Err()
	}
}
