package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/xavierca1/commission-crm/internal/entity"
)

type HealthHandler struct {
	DB        *sql.DB
	Cfg       entity.Config
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(db *sql.DB, cfg entity.Config) *HealthHandler {
	return &HealthHandler{
		DB:        db,
		Cfg:       cfg,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.DB != nil {
		if err := h.DB.Ping(); err != nil {
			deps["database"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["database"] = "healthy"
		}
	} else {
		deps["database"] = "not configured"
	}

	deps["stripe"] = configuredLabel(h.Cfg.Get(entity.ConfigStripeAPIKey))
	deps["discord"] = configuredLabel(h.Cfg.Get(entity.ConfigDiscordWebhook))
	deps["make"] = configuredLabel(h.Cfg.Get(entity.ConfigMakeWebhook))
	deps["smtp"] = configuredLabel(h.Cfg.Get(entity.ConfigSMTPServer))

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	uptime := time.Since(h.StartTime).Round(time.Second).String()

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       uptime,
		Dependencies: deps,
	}

	w.Header().Set("Content-Type", "application/json")
	if status == "degraded" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	json.NewEncoder(w).Encode(response)
}

func configuredLabel(value string) string {
	if value == "" {
		return "not configured"
	}
	return "configured"
}
