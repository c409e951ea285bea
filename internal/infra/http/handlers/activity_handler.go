package handlers

import (
	"net/http"
	"strconv"

	"github.com/xavierca1/commission-crm/internal/entity"
)

type ActivityHandler struct {
	Activity entity.ActivityRepository
}

func NewActivityHandler(activity entity.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{Activity: activity}
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := h.Activity.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list activity log")
		return
	}
	if entries == nil {
		entries = []entity.ActivityEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
