package quote

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"barrigudo/internal/domain/lead"
	"barrigudo/internal/domain/media"
	"barrigudo/internal/pkg/response"
	"barrigudo/internal/pkg/validator"
)

// Handler exposes the wizard over HTTP. feed may be nil when no live inbox
// is wired (tests).
type Handler struct {
	sessions *Sessions
	feed     *lead.Feed
	leads    lead.Store
}

func NewHandler(sessions *Sessions, feed *lead.Feed, leads lead.Store) *Handler {
	return &Handler{sessions: sessions, feed: feed, leads: leads}
}

// CreateSession handles POST /quote/sessions
func (h *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	s, err := h.sessions.Create(req.Service, req.Zip)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	var snap SessionSnapshot
	_ = s.Do(func(_ context.Context, w *Wizard) error {
		snap = snapshot(s, w)
		return nil
	})
	response.Success(c, http.StatusCreated, snap)
}

// GetSession handles GET /quote/sessions/:id
func (h *Handler) GetSession(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Quote session not found")
		return
	}

	var snap SessionSnapshot
	_ = s.Do(func(_ context.Context, w *Wizard) error {
		snap = snapshot(s, w)
		return nil
	})
	response.Success(c, http.StatusOK, snap)
}

// PostEvent handles POST /quote/sessions/:id/events
func (h *Handler) PostEvent(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Quote session not found")
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid event", errs)
		return
	}

	var snap SessionSnapshot
	err = s.Do(func(ctx context.Context, w *Wizard) error {
		switch req.Type {
		case "zip":
			w.SetZip(ctx, req.Value)
		case "service":
			w.SelectService(req.Value)
		case "subtype":
			w.SelectSubtype(req.Value)
		case "details":
			w.SetDetails(req.Value)
		case "location":
			w.SetLocationType(req.Value)
		case "continue":
			if err := w.ContinueFrom(SectionID(req.Value)); err != nil {
				return err
			}
		default:
			return ErrUnknownEvent
		}
		snap = snapshot(s, w)
		return nil
	})
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_EVENT", err.Error())
		return
	}

	response.Success(c, http.StatusOK, snap)
}

// PutContact handles PUT /quote/sessions/:id/contact
func (h *Handler) PutContact(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Quote session not found")
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	var snap SessionSnapshot
	_ = s.Do(func(_ context.Context, w *Wizard) error {
		w.SetContact(req.FullName, req.Address, req.Email, req.Phone, req.WebsiteURL, req.SelectedPros)
		snap = snapshot(s, w)
		return nil
	})
	response.Success(c, http.StatusOK, snap)
}

// UploadMedia handles POST /quote/sessions/:id/media (multipart "file")
func (h *Handler) UploadMedia(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Quote session not found")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_UPLOAD", "Missing file field")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_UPLOAD", "Unreadable file")
		return
	}
	defer f.Close()

	var item *media.Item
	err = s.Do(func(_ context.Context, w *Wizard) error {
		var addErr error
		item, addErr = w.AddMedia(fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, f)
		return addErr
	})
	if err != nil {
		switch {
		case errors.Is(err, media.ErrVideoTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "VIDEO_TOO_LARGE", "Videos must be 50 MB or smaller")
		case errors.Is(err, media.ErrUnsupportedType):
			response.Error(c, http.StatusUnsupportedMediaType, "UNSUPPORTED_TYPE", "Only images and videos are accepted")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, item)
}

// DeleteMedia handles DELETE /quote/sessions/:id/media/:mediaID
func (h *Handler) DeleteMedia(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Quote session not found")
		return
	}

	err = s.Do(func(_ context.Context, w *Wizard) error {
		return w.RemoveMedia(c.Param("mediaID"))
	})
	if err != nil {
		response.Error(c, http.StatusNotFound, "MEDIA_NOT_FOUND", "Media item not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Media removed"})
}

// Submit handles POST /quote/sessions/:id/submit
func (h *Handler) Submit(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Quote session not found")
		return
	}

	var result *Result
	var fieldErrs map[string]string
	var createdID string
	err = s.Do(func(ctx context.Context, w *Wizard) error {
		r, submitErr := w.Submit(ctx)
		if submitErr != nil {
			fieldErrs = w.FieldErrors()
			return submitErr
		}
		result = r
		createdID = r.LeadID
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
				"Please fix the highlighted fields", fieldErrs)
		case errors.Is(err, ErrAlreadySubmitted):
			response.Error(c, http.StatusConflict, "ALREADY_SUBMITTED", "This quote was already submitted")
		case errors.Is(err, ErrUploadFailed):
			response.Error(c, http.StatusBadGateway, "UPLOAD_FAILED", err.Error())
		default:
			response.Error(c, http.StatusBadGateway, "PERSISTENCE_FAILED", err.Error())
		}
		return
	}

	// A honeypot trip produces no lead; only real submissions hit the feed.
	if h.feed != nil && h.leads != nil && createdID != "" {
		if l, err := h.leads.GetByID(c.Request.Context(), createdID); err == nil {
			h.feed.PublishLeadCreated(l)
		}
	}

	h.sessions.Remove(s.ID)
	response.Success(c, http.StatusOK, result)
}

// DeleteSession handles DELETE /quote/sessions/:id — page teardown.
func (h *Handler) DeleteSession(c *gin.Context) {
	h.sessions.Remove(c.Param("id"))
	response.Success(c, http.StatusOK, gin.H{"message": "Session discarded"})
}
