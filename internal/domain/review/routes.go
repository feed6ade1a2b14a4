package review

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the public testimonials route
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/reviews", handler.ListPublished)
}

// RegisterAdminRoutes registers staff review management
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	reviews := r.Group("/reviews")
	{
		reviews.GET("", handler.ListAll)
		reviews.POST("", handler.Create)
		reviews.PATCH("/:id", handler.Patch)
		reviews.DELETE("/:id", handler.Delete)
	}
}
