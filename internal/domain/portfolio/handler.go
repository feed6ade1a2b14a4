package portfolio

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"barrigudo/internal/pkg/response"
	"barrigudo/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required"`
	ServiceSlug string   `json:"service_slug"`
	Description string   `json:"description"`
	PhotoURLs   []string `json:"photo_urls"`
	Published   bool     `json:"published"`
}

type UpdateProjectRequest struct {
	Title       *string   `json:"title"`
	ServiceSlug *string   `json:"service_slug"`
	Description *string   `json:"description"`
	PhotoURLs   *[]string `json:"photo_urls"`
	Published   *bool     `json:"published"`
}

type Handler struct {
	store Store
	orgID string
}

func NewHandler(store Store, orgID string) *Handler {
	return &Handler{store: store, orgID: orgID}
}

// ListPublished handles GET /portfolio
func (h *Handler) ListPublished(c *gin.Context) {
	projects, err := h.store.List(c.Request.Context(), h.orgID, true)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, projects)
}

// ListAll handles GET /admin/portfolio
func (h *Handler) ListAll(c *gin.Context) {
	projects, err := h.store.List(c.Request.Context(), h.orgID, false)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, projects)
}

// Create handles POST /admin/portfolio
func (h *Handler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid project", errs)
		return
	}

	p := &Project{
		OrgID:       h.orgID,
		Title:       req.Title,
		ServiceSlug: req.ServiceSlug,
		Description: req.Description,
		PhotoURLs:   req.PhotoURLs,
		Published:   req.Published,
	}
	if err := h.store.Create(c.Request.Context(), p); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// Patch handles PATCH /admin/portfolio/:id
func (h *Handler) Patch(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	p, err := h.store.Update(c.Request.Context(), c.Param("id"), Update{
		Title:       req.Title,
		ServiceSlug: req.ServiceSlug,
		Description: req.Description,
		PhotoURLs:   req.PhotoURLs,
		Published:   req.Published,
	})
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "PROJECT_NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Delete handles DELETE /admin/portfolio/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "PROJECT_NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Project deleted"})
}
