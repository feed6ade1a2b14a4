package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"barrigudo/internal/pkg/response"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// ListSettings handles GET /admin/settings
func (h *Handler) ListSettings(c *gin.Context) {
	settings, err := h.store.All(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, settings)
}

// GetSetting handles GET /admin/settings/:key
func (h *Handler) GetSetting(c *gin.Context) {
	setting, err := h.store.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			response.Error(c, http.StatusNotFound, "SETTING_NOT_FOUND", "Setting not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, setting)
}

// PutSetting handles PUT /admin/settings/:key
func (h *Handler) PutSetting(c *gin.Context) {
	var value json.RawMessage
	if err := c.ShouldBindJSON(&value); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	setting, err := h.store.Put(c.Request.Context(), c.Param("key"), value)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, setting)
}
