package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrpaint/internal/config"
)

// Handler carries the dependencies shared by the HTTP handlers.
type Handler struct {
	cfg config.Config
}

// New returns a new Handler instance.
func New(cfg config.Config) *Handler { return &Handler{cfg: cfg} }

// SitemapXML serves a minimal sitemap for the site.
// Update the URLs if you add more pages.
func (h *Handler) SitemapXML(c *gin.Context) {
	c.Header("Content-Type", "application/xml; charset=utf-8")
	scheme := "https"
	host := c.Request.Host
	if xf := c.Request.Header.Get("X-Forwarded-Proto"); xf != "" {
		scheme = xf
	} else if c.Request.TLS == nil {
		scheme = "http"
	}
	base := scheme + "://" + host
	xml := "" +
		"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
		"<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n" +
		"  <url>\n" +
		"    <loc>" + base + "/" + "</loc>\n" +
		"    <changefreq>weekly</changefreq>\n" +
		"    <priority>1.0</priority>\n" +
		"  </url>\n" +
		"</urlset>\n"
	c.String(200, xml)
}
