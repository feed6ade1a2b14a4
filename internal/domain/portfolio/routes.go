package portfolio

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the public gallery route
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/portfolio", handler.ListPublished)
}

// RegisterAdminRoutes registers staff portfolio management
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	projects := r.Group("/portfolio")
	{
		projects.GET("", handler.ListAll)
		projects.POST("", handler.Create)
		projects.PATCH("/:id", handler.Patch)
		projects.DELETE("/:id", handler.Delete)
	}
}
