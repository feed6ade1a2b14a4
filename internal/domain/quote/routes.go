package quote

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the public quote wizard routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	sessions := r.Group("/quote/sessions")
	{
		sessions.POST("", handler.CreateSession)
		sessions.GET("/:id", handler.GetSession)
		sessions.DELETE("/:id", handler.DeleteSession)
		sessions.POST("/:id/events", handler.PostEvent)
		sessions.PUT("/:id/contact", handler.PutContact)
		sessions.POST("/:id/media", handler.UploadMedia)
		sessions.DELETE("/:id/media/:mediaID", handler.DeleteMedia)
		sessions.POST("/:id/submit", handler.Submit)
	}
}
