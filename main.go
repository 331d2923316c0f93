package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrpaint/internal/config"
	"github.com/cristianadrielbraun/qrpaint/internal/handlers"
	"github.com/cristianadrielbraun/qrpaint/web/pages"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	// API routes
	h := handlers.New(cfg)
	api := r.Group("/api")
	{
		api.GET("/qr", h.QRCode)
		api.POST("/logo", h.UploadLogo)
	}
	r.GET("/sitemap.xml", h.SitemapXML)

	// Pages
	r.GET("/", func(c *gin.Context) {
		if err := pages.HomePage().Render(c.Request.Context(), c.Writer); err != nil {
			c.String(500, err.Error())
		}
	})

	addr := ":" + cfg.Port
	log.Printf("qrpaint listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
