package review

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"barrigudo/internal/pkg/response"
	"barrigudo/internal/pkg/validator"
)

type CreateReviewRequest struct {
	Author      string `json:"author" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Comment     string `json:"comment"`
	ServiceSlug string `json:"service_slug"`
	Published   bool   `json:"published"`
}

type UpdateReviewRequest struct {
	Author      *string `json:"author"`
	Rating      *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment     *string `json:"comment"`
	ServiceSlug *string `json:"service_slug"`
	Published   *bool   `json:"published"`
}

type Handler struct {
	store Store
	orgID string
}

func NewHandler(store Store, orgID string) *Handler {
	return &Handler{store: store, orgID: orgID}
}

// ListPublished handles GET /reviews — the public testimonials strip.
func (h *Handler) ListPublished(c *gin.Context) {
	reviews, err := h.store.List(c.Request.Context(), h.orgID, true)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, reviews)
}

// ListAll handles GET /admin/reviews
func (h *Handler) ListAll(c *gin.Context) {
	reviews, err := h.store.List(c.Request.Context(), h.orgID, false)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, reviews)
}

// Create handles POST /admin/reviews
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid review", errs)
		return
	}

	r := &Review{
		OrgID:       h.orgID,
		Author:      req.Author,
		Rating:      req.Rating,
		Comment:     req.Comment,
		ServiceSlug: req.ServiceSlug,
		Published:   req.Published,
	}
	if err := h.store.Create(c.Request.Context(), r); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, r)
}

// Patch handles PATCH /admin/reviews/:id
func (h *Handler) Patch(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid review", errs)
		return
	}

	r, err := h.store.Update(c.Request.Context(), c.Param("id"), Update{
		Author:      req.Author,
		Rating:      req.Rating,
		Comment:     req.Comment,
		ServiceSlug: req.ServiceSlug,
		Published:   req.Published,
	})
	if err != nil {
		if errors.Is(err, ErrReviewNotFound) {
			response.Error(c, http.StatusNotFound, "REVIEW_NOT_FOUND", "Review not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, r)
}

// Delete handles DELETE /admin/reviews/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrReviewNotFound) {
			response.Error(c, http.StatusNotFound, "REVIEW_NOT_FOUND", "Review not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Review deleted"})
}
