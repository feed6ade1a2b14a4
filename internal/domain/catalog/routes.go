package catalog

import "github.com/gin-gonic/gin"

// RegisterRoutes registers public catalog routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	services := r.Group("/services")
	{
		services.GET("", handler.ListServices)
		services.GET("/:slug", handler.GetService)
		services.GET("/:slug/sub-services", handler.ListSubServices)
	}
}
