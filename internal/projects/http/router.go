package http

import "github.com/gin-gonic/gin"

// Register attaches the project admin routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/new", h.newProject)
	rg.GET("/:id", h.edit)
	rg.POST("/:id", h.save)
	rg.DELETE("/:id", h.delete)
}
