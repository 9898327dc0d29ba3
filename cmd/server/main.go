package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/photobooth/internal/api"
	"github.com/youruser/photobooth/internal/config"
	"github.com/youruser/photobooth/internal/fonts"
	"github.com/youruser/photobooth/internal/presets"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal(err)
	}

	fm, err := fonts.New(cfg.FontOverrides())
	if err != nil {
		log.Fatal(err)
	}

	// Load extra presets at startup (best-effort)
	catalog := presets.Builtin()
	extra, err := presets.LoadDir(cfg.Paths.Presets)
	if err != nil {
		log.Println("Warning: failed to load presets at startup:", err)
	} else {
		catalog = presets.Merge(catalog, extra)
	}

	r := gin.Default()
	api.RegisterRoutes(r, api.NewServer(cfg, catalog, fm))

	log.Println("starting server on http://localhost:" + cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
