package render

import "image/color"

// Style selects how dark modules are painted.
type Style string

const (
	StyleSquares Style = "squares"
	StyleDots    Style = "dots"
)

// PaddingStyle selects the shape cleared behind the logo.
type PaddingStyle string

const (
	PaddingSquare PaddingStyle = "square"
	PaddingCircle PaddingStyle = "circle"
)

// ECLevel is the QR error-correction strength. Higher levels add
// redundancy at the cost of data capacity.
type ECLevel string

const (
	ECLow     ECLevel = "L"
	ECMedium  ECLevel = "M"
	ECQuart   ECLevel = "Q"
	ECHighest ECLevel = "H"
)

// CornerRadii holds one radius per corner, clockwise from top-left:
// top-left, top-right, bottom-right, bottom-left.
type CornerRadii [4]float64

// AllCorners broadcasts a single radius to all four corners.
func AllCorners(r float64) CornerRadii {
	return CornerRadii{r, r, r, r}
}

// EyeRadius holds the corner radii for the two nested squares of one
// positional eye.
type EyeRadius struct {
	Outer CornerRadii
	Inner CornerRadii
}

// EyeColor holds the colors for the two zones of one positional eye.
// A nil zone falls back to the foreground color.
type EyeColor struct {
	Outer color.Color
	Inner color.Color
}

type logoOptions struct {
	source       string
	width        int
	height       int
	opacity      float64
	padding      int
	paddingStyle PaddingStyle
	removeBehind bool
	enableCORS   bool
}

// Options is the fully resolved configuration for one render. Construct
// it through Render's functional options; every field has a default.
type Options struct {
	value      string
	ecLevel    ECLevel
	size       int
	quietZone  int
	fgColor    color.Color
	bgColor    color.Color
	style      Style
	pixelRatio float64

	eyeRadii  [3]EyeRadius
	eyeColors [3]EyeColor

	logo       logoOptions
	onLogoLoad func(error)
}

// Option mutates Options before rendering starts.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		value:      "https://qrpaint.dev",
		ecLevel:    ECMedium,
		size:       150,
		quietZone:  10,
		fgColor:    color.Black,
		bgColor:    color.White,
		style:      StyleSquares,
		pixelRatio: 1,
		logo: logoOptions{
			opacity:      1,
			paddingStyle: PaddingSquare,
		},
	}
}

// WithValue sets the data to encode.
func WithValue(v string) Option {
	return func(o *Options) {
		if v != "" {
			o.value = v
		}
	}
}

// WithECLevel sets the error-correction level. Unknown levels are ignored.
func WithECLevel(l ECLevel) Option {
	return func(o *Options) {
		switch l {
		case ECLow, ECMedium, ECQuart, ECHighest:
			o.ecLevel = l
		}
	}
}

// WithSize sets the symbol area in pixels, excluding the quiet zone.
func WithSize(px int) Option {
	return func(o *Options) {
		if px > 0 {
			o.size = px
		}
	}
}

// WithQuietZone sets the blank border width in pixels. Zero is valid;
// negative values are clamped.
func WithQuietZone(px int) Option {
	return func(o *Options) {
		if px < 0 {
			px = 0
		}
		o.quietZone = px
	}
}

func WithFgColor(c color.Color) Option {
	return func(o *Options) {
		if c != nil {
			o.fgColor = c
		}
	}
}

func WithBgColor(c color.Color) Option {
	return func(o *Options) {
		if c != nil {
			o.bgColor = c
		}
	}
}

func WithStyle(s Style) Option {
	return func(o *Options) {
		switch s {
		case StyleSquares, StyleDots:
			o.style = s
		}
	}
}

// WithPixelRatio sets the device pixel scale. All drawing coordinates
// stay logical; the surface is allocated ratio times larger.
func WithPixelRatio(r float64) Option {
	return func(o *Options) {
		if r > 0 {
			o.pixelRatio = r
		}
	}
}

// WithEyeRadius broadcasts one radius to every corner of every eye,
// inner and outer.
func WithEyeRadius(r float64) Option {
	return WithEyeRadii(EyeRadius{Outer: AllCorners(r), Inner: AllCorners(r)})
}

// WithEyeCornerRadii applies the same per-corner radii to the inner and
// outer squares of every eye.
func WithEyeCornerRadii(c CornerRadii) Option {
	return WithEyeRadii(EyeRadius{Outer: c, Inner: c})
}

// WithEyeRadii applies one inner/outer radius pair to all three eyes.
func WithEyeRadii(er EyeRadius) Option {
	return func(o *Options) {
		o.eyeRadii = [3]EyeRadius{er, er, er}
	}
}

// WithPerEyeRadii sets radii per eye: top-left, top-right, bottom-left.
func WithPerEyeRadii(topLeft, topRight, bottomLeft EyeRadius) Option {
	return func(o *Options) {
		o.eyeRadii = [3]EyeRadius{topLeft, topRight, bottomLeft}
	}
}

// WithEyeColor paints both zones of every eye with one color.
func WithEyeColor(c color.Color) Option {
	return WithEyeColorPair(c, c)
}

// WithEyeColorPair sets the outer ring and inner square colors for all
// three eyes.
func WithEyeColorPair(outer, inner color.Color) Option {
	return func(o *Options) {
		ec := EyeColor{Outer: outer, Inner: inner}
		o.eyeColors = [3]EyeColor{ec, ec, ec}
	}
}

// WithPerEyeColors sets colors per eye: top-left, top-right, bottom-left.
func WithPerEyeColors(topLeft, topRight, bottomLeft EyeColor) Option {
	return func(o *Options) {
		o.eyeColors = [3]EyeColor{topLeft, topRight, bottomLeft}
	}
}

// WithLogo sets the logo source: an http(s) URL, a data URI, or a local
// file path. SVG sources are rasterized.
func WithLogo(source string) Option {
	return func(o *Options) { o.logo.source = source }
}

// WithLogoSize sets explicit logo draw dimensions in pixels. Zero keeps
// the defaults (width 20% of the symbol size, square).
func WithLogoSize(width, height int) Option {
	return func(o *Options) {
		o.logo.width = width
		o.logo.height = height
	}
}

// WithLogoOpacity sets the opacity of the logo draw only, clamped to [0,1].
func WithLogoOpacity(a float64) Option {
	return func(o *Options) { o.logo.opacity = clamp(a, 0, 1) }
}

// WithLogoPadding clears a padded area behind the logo in the
// background color. Negative padding is clamped to zero.
func WithLogoPadding(px int, style PaddingStyle) Option {
	return func(o *Options) {
		if px < 0 {
			px = 0
		}
		o.logo.padding = px
		if style == PaddingCircle {
			o.logo.paddingStyle = PaddingCircle
		}
	}
}

// WithRemoveBehindLogo clears the logo's draw bounds even without padding.
func WithRemoveBehindLogo(remove bool) Option {
	return func(o *Options) { o.logo.removeBehind = remove }
}

// WithCORS adds an Origin header to outbound logo fetches so
// CORS-gated hosts serve the embeddable variant.
func WithCORS(enabled bool) Option {
	return func(o *Options) { o.logo.enableCORS = enabled }
}

// WithLogoLoadCallback registers a callback fired once logo compositing
// finishes, or with the load error when it fails.
func WithLogoLoadCallback(fn func(error)) Option {
	return func(o *Options) { o.onLogoLoad = fn }
}

// eyeColor resolves the color pair for one eye, substituting the
// foreground color for unset zones.
func (o *Options) eyeColor(i int) EyeColor {
	ec := o.eyeColors[i]
	if ec.Outer == nil {
		ec.Outer = o.fgColor
	}
	if ec.Inner == nil {
		ec.Inner = o.fgColor
	}
	return ec
}
