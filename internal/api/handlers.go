// Package api exposes the compositing engine over HTTP.
package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/youruser/photobooth/internal/compose"
	"github.com/youruser/photobooth/internal/config"
	"github.com/youruser/photobooth/internal/fonts"
	imagepkg "github.com/youruser/photobooth/internal/image"
	"github.com/youruser/photobooth/internal/presets"
)

// Server holds what the handlers share: settings, the preset catalog and
// a renderer bound to the configured fonts.
type Server struct {
	cfg      *config.Config
	catalog  []presets.Preset
	fonts    *fonts.Manager
	renderer *compose.Renderer
}

// NewServer builds a Server; a nil fm uses the embedded fonts.
func NewServer(cfg *config.Config, catalog []presets.Preset, fm *fonts.Manager) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if fm == nil {
		fm = fonts.Default()
	}
	return &Server{
		cfg:      cfg,
		catalog:  catalog,
		fonts:    fm,
		renderer: compose.NewRenderer(fm),
	}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// presetsHandler lists the catalog, narrowed by the kind, type, pack and
// q query params.
func (s *Server) presetsHandler(c *gin.Context) {
	var opt presets.FilterOptions
	if k := c.Query("kind"); k != "" {
		opt.Kinds = []presets.Kind{presets.Kind(k)}
	}
	if t := c.Query("type"); t != "" {
		opt.Types = strings.Split(t, ",")
	}
	if p := c.Query("pack"); p != "" {
		opt.Packs = strings.Split(p, ",")
	}
	opt.FreeWords = c.Query("q")
	out := presets.Filter(s.catalog, opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "presets": out})
}

func (s *Server) filterHandler(c *gin.Context) {
	var opt presets.FilterOptions
	if err := c.BindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := presets.Filter(s.catalog, opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "presets": out})
}

// frameHandler returns a built-in frame overlay as PNG.
func frameHandler(c *gin.Context) {
	img, ok := presets.Frame(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown frame " + c.Param("id")})
		return
	}
	b, err := imagepkg.PNG(img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

const (
	qrDefaultSize = 400
	qrMinSize     = 64
	qrMaxSize     = 2048
)

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = "photobooth"
	}
	size := qrDefaultSize
	if v, err := strconv.Atoi(c.Query("size")); err == nil {
		size = min(max(v, qrMinSize), qrMaxSize)
	}
	b, err := imagepkg.QRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
