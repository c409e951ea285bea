package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/commission-crm/internal/entity"
)

type CallHandler struct {
	Calls entity.CallMeetingRepository
}

func NewCallHandler(calls entity.CallMeetingRepository) *CallHandler {
	return &CallHandler{Calls: calls}
}

type createCallRequest struct {
	LeadID        int64  `json:"lead_id"`
	CallDatetime  string `json:"call_datetime"`
	CallOutcome   string `json:"call_outcome"`
	NotesSummary  string `json:"notes_summary"`
	RecordingLink string `json:"recording_link"`
}

func (h *CallHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.LeadID == 0 {
		writeError(w, http.StatusBadRequest, "lead_id is required")
		return
	}

	callTime, err := parseCallDatetime(req.CallDatetime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "call_datetime must be RFC3339 or YYYY-MM-DDTHH:MM")
		return
	}

	call := &entity.CallMeeting{
		LeadID:        req.LeadID,
		CallDatetime:  callTime,
		CallOutcome:   req.CallOutcome,
		NotesSummary:  req.NotesSummary,
		RecordingLink: req.RecordingLink,
	}

	if err := h.Calls.Create(r.Context(), call); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create call")
		return
	}

	writeJSON(w, http.StatusCreated, call)
}

func (h *CallHandler) ListByLead(w http.ResponseWriter, r *http.Request) {
	leadID, err := strconv.ParseInt(chi.URLParam(r, "leadID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}

	calls, err := h.Calls.ListByLeadID(r.Context(), leadID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list calls")
		return
	}
	if calls == nil {
		calls = []entity.CallMeeting{}
	}
	writeJSON(w, http.StatusOK, calls)
}

func parseCallDatetime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", s)
}
