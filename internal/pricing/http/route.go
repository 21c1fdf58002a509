package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/packages")

	// === Public Routes ===
	// The customer-facing search calls this without a session.
	{
		group.GET("/calculate", h.Calculate)
	}
}
