package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barrigudo/internal/pkg/response"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListServices handles GET /services?category=top
func (h *Handler) ListServices(c *gin.Context) {
	category := Category(c.Query("category"))
	response.Success(c, http.StatusOK, Services(category))
}

// GetService handles GET /services/:slug
func (h *Handler) GetService(c *gin.Context) {
	svc, ok := ServiceBySlug(c.Param("slug"))
	if !ok {
		response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found")
		return
	}
	response.Success(c, http.StatusOK, svc)
}

// ListSubServices handles GET /services/:slug/sub-services. Unknown slugs
// return the generic default options rather than an error.
func (h *Handler) ListSubServices(c *gin.Context) {
	response.Success(c, http.StatusOK, SubServices(c.Param("slug")))
}
