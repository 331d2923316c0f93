package handlers

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrpaint/internal/render"
)

// normalizeHTTPURL validates and normalizes a URL string for QR generation.
// It ensures an http/https scheme, a non-empty hostname, and returns a cleaned absolute URL.
func normalizeHTTPURL(s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", fmt.Errorf("URL parameter is required")
	}
	// If missing scheme, default to https
	if !strings.Contains(v, "://") {
		v = "https://" + v
	}
	u, err := url.ParseRequestURI(v)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("only http and https URLs are supported")
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL must include a valid host")
	}
	// Optional: cap length to avoid abuse
	if len(v) > 4096 {
		return "", fmt.Errorf("URL is too long")
	}
	return u.String(), nil
}

// QRCode renders a QR code for a URL with the customization options
// exposed as query parameters.
func (h *Handler) QRCode(c *gin.Context) {
	rawURL := strings.TrimSpace(c.Query("url"))
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL parameter is required"})
		return
	}
	value, err := normalizeHTTPURL(rawURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", "png"))
	if format == "jpeg" {
		format = "jpg"
	}
	if format != "png" && format != "jpg" && format != "datauri" {
		format = "png"
	}

	bgColor := parseColorParam(c.Query("bg"), color.RGBA{255, 255, 255, 255})
	fgColor := parseColorParam(c.Query("fg"), color.RGBA{0, 0, 0, 255})

	opts := []render.Option{
		render.WithValue(value),
		render.WithSize(parseIntParam(c.Query("size"), 300)),
		render.WithQuietZone(parseIntParam(c.Query("quietZone"), 12)),
		render.WithFgColor(fgColor),
		render.WithBgColor(bgColor),
		render.WithECLevel(parseECLevel(c.DefaultQuery("ecLevel", "M"))),
	}
	if c.Query("style") == "dots" {
		opts = append(opts, render.WithStyle(render.StyleDots))
	}
	if r := parseFloatParam(c.Query("eyeRadius"), 0); r > 0 {
		opts = append(opts, render.WithEyeRadius(r))
	}
	if ec := c.Query("eyeColor"); ec != "" {
		opts = append(opts, render.WithEyeColor(parseColorParam(ec, color.RGBA{0, 0, 0, 255})))
	}
	opts = append(opts, h.logoOptions(c)...)

	surface, err := render.Render(opts...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to generate QR code: %v", err)})
		return
	}
	// An HTTP response is single-shot, so wait for the logo phase
	// before encoding. A logo failure degrades to a logo-less symbol,
	// but a dead request context means the logo goroutine may still be
	// writing to the surface, so encoding it now would race.
	if err := surface.Wait(c.Request.Context()); err != nil {
		var lerr *render.LogoLoadError
		if !errors.As(err, &lerr) {
			return
		}
		c.Header("X-QR-Logo-Error", err.Error())
	}

	c.Header("Cache-Control", "public, max-age=3600") // Cache for 1 hour

	switch format {
	case "jpg":
		// Composite onto an opaque background, then encode JPEG.
		img := surface.Image()
		bg := opaque(bgColor)
		bounds := img.Bounds()
		out := image.NewRGBA(bounds)
		draw.Draw(out, bounds, &image.Uniform{C: bg}, image.Point{}, draw.Src)
		draw.Draw(out, bounds, img, bounds.Min, draw.Over)

		c.Header("Content-Type", "image/jpeg")
		if err := jpeg.Encode(c.Writer, out, &jpeg.Options{Quality: 92}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to encode JPEG: %v", err)})
		}
	case "datauri":
		uri, err := surface.DataURI()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize QR code"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"qr_code": uri})
	default:
		png, err := surface.PNG()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode PNG"})
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}

// logoOptions translates the logo query parameters. An uploaded
// logoFile takes precedence over a remote logoUrl.
func (h *Handler) logoOptions(c *gin.Context) []render.Option {
	source := strings.TrimSpace(c.Query("logoUrl"))
	if name := filepath.Base(strings.TrimSpace(c.Query("logoFile"))); name != "" && name != "." {
		path := filepath.Join(h.cfg.UploadDir, name)
		if _, err := os.Stat(path); err == nil {
			source = path
		}
	}
	if source == "" {
		return nil
	}

	opts := []render.Option{
		render.WithLogo(source),
		render.WithLogoSize(parseIntParam(c.Query("logoWidth"), 0), parseIntParam(c.Query("logoHeight"), 0)),
		render.WithLogoOpacity(parseFloatParam(c.Query("logoOpacity"), 1)),
		render.WithCORS(c.Query("enableCORS") == "true"),
	}
	style := render.PaddingSquare
	if c.Query("paddingStyle") == "circle" {
		style = render.PaddingCircle
	}
	opts = append(opts, render.WithLogoPadding(parseIntParam(c.Query("logoPadding"), 0), style))
	if c.Query("removeBehindLogo") == "true" {
		opts = append(opts, render.WithRemoveBehindLogo(true))
	}
	return opts
}

// Helper function to parse hex color parameters
func parseColorParam(param string, defaultColor color.RGBA) color.RGBA {
	if param == "" {
		return defaultColor
	}

	// Handle transparent background
	if strings.ToLower(param) == "transparent" {
		return color.RGBA{0, 0, 0, 0} // Fully transparent
	}

	// Remove # if present
	param = strings.TrimPrefix(param, "#")

	// 6 hex digits, or 8 with an alpha channel
	if len(param) != 6 && len(param) != 8 {
		return defaultColor
	}

	r, err1 := strconv.ParseUint(param[0:2], 16, 8)
	g, err2 := strconv.ParseUint(param[2:4], 16, 8)
	b, err3 := strconv.ParseUint(param[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return defaultColor
	}

	a := uint64(255)
	if len(param) == 8 {
		var err error
		a, err = strconv.ParseUint(param[6:8], 16, 8)
		if err != nil {
			return defaultColor
		}
	}

	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}
}

func parseIntParam(param string, fallback int) int {
	if param == "" {
		return fallback
	}
	v, err := strconv.Atoi(param)
	if err != nil {
		return fallback
	}
	return v
}

func parseFloatParam(param string, fallback float64) float64 {
	if param == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseECLevel(param string) render.ECLevel {
	switch strings.ToUpper(strings.TrimSpace(param)) {
	case "L":
		return render.ECLow
	case "Q":
		return render.ECQuart
	case "H":
		return render.ECHighest
	default:
		return render.ECMedium
	}
}

// opaque strips transparency, falling back to white for a fully
// transparent background.
func opaque(c color.RGBA) color.RGBA {
	if c.A == 0 {
		return color.RGBA{255, 255, 255, 255}
	}
	return color.RGBA{c.R, c.G, c.B, 255}
}
