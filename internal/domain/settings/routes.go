package settings

import "github.com/gin-gonic/gin"

// RegisterAdminRoutes registers site settings management
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	s := r.Group("/settings")
	{
		s.GET("", handler.ListSettings)
		s.GET("/:key", handler.GetSetting)
		s.PUT("/:key", handler.PutSetting)
	}
}
