package render

import (
	"errors"
	"fmt"
)

// ErrSurfaceCreation is returned when the raster surface cannot be
// allocated. It aborts the entire render.
var ErrSurfaceCreation = errors.New("render: cannot create raster surface")

// LogoLoadError reports a failed logo fetch or decode. It is non-fatal:
// the surface stays valid, just without the logo.
type LogoLoadError struct {
	Source string
	Err    error
}

func (e *LogoLoadError) Error() string {
	return fmt.Sprintf("render: load logo %q: %v", e.Source, e.Err)
}

func (e *LogoLoadError) Unwrap() error { return e.Err }
