package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, s *Server) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/presets", s.presetsHandler)
		api.POST("/presets/filter", s.filterHandler)
		api.GET("/frames/:id", frameHandler)
		api.POST("/render", s.renderHandler)
		api.POST("/sheet", s.sheetHandler)
		api.GET("/qr", qrHandler)
	}
}
