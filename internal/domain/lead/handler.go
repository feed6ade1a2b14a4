package lead

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"barrigudo/internal/pkg/response"
	"barrigudo/internal/pkg/validator"
)

// Handler handles admin inbox HTTP requests
type Handler struct {
	service *Service
	feed    *Feed
	orgID   string
}

func NewHandler(service *Service, feed *Feed, orgID string) *Handler {
	return &Handler{service: service, feed: feed, orgID: orgID}
}

// ListLeads handles GET /admin/leads?status=new
func (h *Handler) ListLeads(c *gin.Context) {
	var status *Status
	if s := c.Query("status"); s != "" {
		sv := Status(s)
		if !ValidStatus(sv) {
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown status filter")
			return
		}
		status = &sv
	}

	leads, err := h.service.List(c.Request.Context(), h.orgID, status)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, LeadListResponse{Leads: leads, Total: len(leads)})
}

// GetLead handles GET /admin/leads/:id
func (h *Handler) GetLead(c *gin.Context) {
	l, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, l)
}

// UpdateStatus handles PATCH /admin/leads/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid status update", errs)
		return
	}

	l, err := h.service.ChangeStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrLeadNotFound):
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATUS", "Unknown status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}
	response.Success(c, http.StatusOK, l)
}

// UpdateNotes handles PATCH /admin/leads/:id/notes
func (h *Handler) UpdateNotes(c *gin.Context) {
	var req UpdateLeadNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	l, err := h.service.UpdateNotes(c.Request.Context(), c.Param("id"), req.Notes)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, l)
}

// GetStats handles GET /admin/leads/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), h.orgID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// InboxWS handles GET /admin/inbox/ws — the live dashboard feed.
func (h *Handler) InboxWS(c *gin.Context) {
	if err := h.feed.ServeWS(c.Writer, c.Request); err != nil {
		log.Warn().Err(err).Msg("inbox websocket upgrade failed")
	}
}
