package render

import (
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// logoPlacement is the geometry captured before the loader goroutine
// starts, so the compositor never reads Options after Render returns.
type logoPlacement struct {
	x, y, w, h   float64 // logo draw bounds, quiet-zone offset included
	padding      float64
	paddingStyle PaddingStyle
	clear        bool
	bg           color.Color
	opacity      float64
	ratio        float64
}

func (o *Options) logoPlacement() logoPlacement {
	w := float64(o.logo.width)
	if w <= 0 {
		w = 0.2 * float64(o.size)
	}
	h := float64(o.logo.height)
	if h <= 0 {
		h = w
	}
	offset := float64(o.quietZone)
	pad := float64(o.logo.padding)

	return logoPlacement{
		x:            (float64(o.size)-w)/2 + offset,
		y:            (float64(o.size)-h)/2 + offset,
		w:            w,
		h:            h,
		padding:      pad,
		paddingStyle: o.logo.paddingStyle,
		clear:        o.logo.removeBehind || pad > 0,
		bg:           o.bgColor,
		opacity:      clamp(o.logo.opacity, 0, 1),
		ratio:        o.pixelRatio,
	}
}

// loadLogo fetches and decodes the logo from an http(s) URL, a data
// URI, or a local file. SVG sources are rasterized.
func loadLogo(source string, cors bool) (image.Image, error) {
	switch {
	case strings.HasPrefix(source, "data:"):
		return decodeDataURI(source)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		req, err := http.NewRequest(http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		if cors {
			req.Header.Set("Origin", "null")
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return decodeImage(resp.Body, resp.Header.Get("Content-Type"), source)
	default:
		f, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return decodeImage(f, "", source)
	}
}

func decodeDataURI(uri string) (image.Image, error) {
	meta, data, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, errors.New("malformed data URI")
	}
	var r io.Reader
	if strings.HasSuffix(meta, ";base64") {
		r = base64.NewDecoder(base64.StdEncoding, strings.NewReader(data))
	} else {
		unescaped, err := url.QueryUnescape(data)
		if err != nil {
			return nil, err
		}
		r = strings.NewReader(unescaped)
	}
	return decodeImage(r, meta, uri)
}

func decodeImage(r io.Reader, contentType, source string) (image.Image, error) {
	if strings.Contains(contentType, "svg") || strings.HasSuffix(strings.ToLower(source), ".svg") {
		return rasterizeSVG(r)
	}
	img, _, err := image.Decode(r)
	return img, err
}

func rasterizeSVG(r io.Reader) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, err
	}
	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		w, h = 512, 512
	}
	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}

// compositeLogo clears the padded area behind the logo if requested,
// then blits the scaled logo with the configured opacity. The clear
// uses the gg context (logical coordinates); the blit works on the raw
// surface in device pixels so opacity can be applied as a uniform
// alpha mask to this draw only.
func compositeLogo(dc *gg.Context, logo image.Image, p logoPlacement) {
	if p.clear {
		cw := p.w + 2*p.padding
		ch := p.h + 2*p.padding
		cx := p.x - p.padding
		cy := p.y - p.padding
		if p.paddingStyle == PaddingCircle {
			fillEllipse(dc, cx+cw/2, cy+ch/2, cw/2, ch/2, p.bg)
		} else {
			fillRect(dc, cx, cy, cw, ch, p.bg)
		}
	}

	dst, ok := dc.Image().(*image.RGBA)
	if !ok {
		return
	}
	pw := int(math.Round(p.w * p.ratio))
	ph := int(math.Round(p.h * p.ratio))
	if pw < 1 || ph < 1 {
		return
	}
	scaled := resize.Resize(uint(pw), uint(ph), logo, resize.Lanczos3)
	x0 := int(math.Round(p.x * p.ratio))
	y0 := int(math.Round(p.y * p.ratio))
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(p.opacity * 255))})
	draw.DrawMask(dst, image.Rect(x0, y0, x0+pw, y0+ph), scaled, image.Point{}, mask, image.Point{}, draw.Over)
}
