package lead

import "github.com/gin-gonic/gin"

// RegisterAdminRoutes registers the admin inbox routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	leads := r.Group("/leads")
	{
		leads.GET("", handler.ListLeads)
		leads.GET("/stats", handler.GetStats)
		leads.GET("/:id", handler.GetLead)
		leads.PATCH("/:id/status", handler.UpdateStatus)
		leads.PATCH("/:id/notes", handler.UpdateNotes)
	}
	r.GET("/inbox/ws", handler.InboxWS)
}
