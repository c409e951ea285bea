package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/commission-crm/internal/entity"
	"github.com/xavierca1/commission-crm/internal/infra/http/middleware"
)

// StatusAutomation é a porta do dispatcher que a camada HTTP enxerga.
type StatusAutomation interface {
	HandleStatusChange(ctx context.Context, leadID int64, oldStatus, newStatus entity.LeadStatus)
}

type LeadHandler struct {
	Leads      entity.LeadRepository
	Automation StatusAutomation
}

func NewLeadHandler(leads entity.LeadRepository, automation StatusAutomation) *LeadHandler {
	return &LeadHandler{Leads: leads, Automation: automation}
}

type createLeadRequest struct {
	Name               string `json:"lead_name"`
	CompanyName        string `json:"company_name"`
	Industry           string `json:"industry"`
	Source             string `json:"source"`
	ContactEmail       string `json:"contact_email"`
	ContactPhone       string `json:"contact_phone"`
	AssignedCloserID   *int64 `json:"assigned_closer_id"`
	AssignedProducerID *int64 `json:"assigned_producer_id"`
	Notes              string `json:"notes"`
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "lead_name is required")
		return
	}

	lead := &entity.Lead{
		Name:               req.Name,
		CompanyName:        req.CompanyName,
		Industry:           req.Industry,
		Source:             req.Source,
		ContactEmail:       req.ContactEmail,
		ContactPhone:       req.ContactPhone,
		AssignedCloserID:   req.AssignedCloserID,
		AssignedProducerID: req.AssignedProducerID,
		Notes:              req.Notes,
	}

	if err := h.Leads.Create(r.Context(), lead); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create lead")
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list leads")
		return
	}
	if leads == nil {
		leads = []entity.Lead{}
	}
	writeJSON(w, http.StatusOK, leads)
}

type updateStatusRequest struct {
	NewStatus string `json:"new_status"`
}

type updateStatusResponse struct {
	Success   bool   `json:"success"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// UpdateStatus é o gatilho da automação pelo caminho da UI: persiste a
// transição e entrega o par old/new para o dispatcher.
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	leadID, err := strconv.ParseInt(chi.URLParam(r, "leadID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	newStatus := entity.LeadStatus(req.NewStatus)
	if !newStatus.Valid() {
		writeError(w, http.StatusBadRequest, "Unknown status value")
		return
	}

	lead, err := h.Leads.FindByID(r.Context(), leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeError(w, http.StatusNotFound, "Lead not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load lead")
		return
	}
	oldStatus := lead.Status

	if err := h.Leads.UpdateStatus(r.Context(), leadID, newStatus); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	h.Automation.HandleStatusChange(r.Context(), leadID, oldStatus, newStatus)
	middleware.RecordStatusChange(string(newStatus))

	writeJSON(w, http.StatusOK, updateStatusResponse{
		Success:   true,
		OldStatus: string(oldStatus),
		NewStatus: string(newStatus),
	})
}
