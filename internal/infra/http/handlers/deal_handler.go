package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/xavierca1/commission-crm/internal/entity"
	"github.com/xavierca1/commission-crm/internal/infra/http/middleware"
	"github.com/xavierca1/commission-crm/internal/usecase"
)

type DealHandler struct {
	Deals      entity.DealRepository
	Leads      entity.LeadRepository
	Automation StatusAutomation
}

func NewDealHandler(deals entity.DealRepository, leads entity.LeadRepository, automation StatusAutomation) *DealHandler {
	return &DealHandler{Deals: deals, Leads: leads, Automation: automation}
}

type createDealRequest struct {
	LeadID        int64   `json:"lead_id"`
	DealValue     float64 `json:"deal_value"`
	DealStage     string  `json:"deal_stage"`
	CloseDate     string  `json:"close_date"`
	PaymentStatus string  `json:"payment_status"`
}

type createDealResponse struct {
	Deal        entity.Deal             `json:"deal"`
	Commissions usecase.CommissionSplit `json:"commissions"`
}

// Create grava o deal já com o preview de comissão persistido, como a tela de
// deals sempre fez. Stage "Won" também avança o lead para Deal Closed e
// dispara a automação.
func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.LeadID == 0 {
		writeError(w, http.StatusBadRequest, "lead_id is required")
		return
	}
	// guard rail da UI: o calculador em si aceita qualquer valor
	if req.DealValue <= 0 {
		writeError(w, http.StatusBadRequest, "deal_value must be greater than zero")
		return
	}

	split := usecase.CalculateCommissions(req.DealValue)

	deal := &entity.Deal{
		LeadID:             req.LeadID,
		Value:              req.DealValue,
		Stage:              req.DealStage,
		PaymentStatus:      req.PaymentStatus,
		CommissionLeadGen:  &split.LeadGen,
		CommissionCloser:   &split.Closer,
		CommissionProducer: &split.Producer,
		TotalCommission:    &split.Total,
	}

	if req.CloseDate != "" {
		closeDate, err := time.Parse("2006-01-02", req.CloseDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "close_date must be YYYY-MM-DD")
			return
		}
		deal.CloseDate = &closeDate
	}

	if err := h.Deals.Create(r.Context(), deal); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create deal")
		return
	}

	if deal.Stage == "Won" {
		h.advanceLeadToClosed(r, deal.LeadID)
	}

	writeJSON(w, http.StatusCreated, createDealResponse{Deal: *deal, Commissions: split})
}

func (h *DealHandler) advanceLeadToClosed(r *http.Request, leadID int64) {
	lead, err := h.Leads.FindByID(r.Context(), leadID)
	if err != nil {
		return
	}
	oldStatus := lead.Status

	if err := h.Leads.UpdateStatus(r.Context(), leadID, entity.StatusDealClosed); err != nil {
		return
	}

	h.Automation.HandleStatusChange(r.Context(), leadID, oldStatus, entity.StatusDealClosed)
	middleware.RecordStatusChange(string(entity.StatusDealClosed))
}

func (h *DealHandler) List(w http.ResponseWriter, r *http.Request) {
	deals, err := h.Deals.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list deals")
		return
	}
	if deals == nil {
		deals = []entity.Deal{}
	}
	writeJSON(w, http.StatusOK, deals)
}
