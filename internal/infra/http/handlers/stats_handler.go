package handlers

import (
	"database/sql"
	"net/http"
)

type StatsHandler struct {
	DB *sql.DB
}

type statsResponse struct {
	TotalLeads      int64   `json:"total_leads"`
	ActiveDeals     int64   `json:"active_deals"`
	TotalRevenue    float64 `json:"total_revenue"`
	PendingPayments int64   `json:"pending_payments"`
}

func NewStatsHandler(db *sql.DB) *StatsHandler {
	return &StatsHandler{DB: db}
}

// Handle devolve os números do dashboard: leads, deals ativos, receita paga e
// pagamentos pendentes.
func (h *StatsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var stats statsResponse

	queries := []struct {
		query string
		dest  any
	}{
		{`SELECT COUNT(*) FROM leads`, &stats.TotalLeads},
		{`SELECT COUNT(*) FROM deals WHERE deal_stage IS DISTINCT FROM 'Lost'`, &stats.ActiveDeals},
		{`SELECT COALESCE(SUM(deal_value), 0) FROM deals WHERE payment_status = 'Paid'`, &stats.TotalRevenue},
		{`SELECT COUNT(*) FROM deals WHERE payment_status = 'Pending'`, &stats.PendingPayments},
	}

	for _, q := range queries {
		if err := h.DB.QueryRowContext(ctx, q.query).Scan(q.dest); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to compute stats")
			return
		}
	}

	writeJSON(w, http.StatusOK, stats)
}
