package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/xavierca1/commission-crm/internal/entity"
	"github.com/xavierca1/commission-crm/internal/infra/http/middleware"
	"github.com/xavierca1/commission-crm/internal/usecase"
)

// AutomationIngress é o que o handler precisa da automação para processar
// webhooks de entrada.
type AutomationIngress interface {
	HandleStripeEvent(ctx context.Context, event usecase.StripeEvent) bool
	HandleMakeEvent(ctx context.Context, event usecase.MakeEvent) bool
}

type WebhookHandler struct {
	Ingress  AutomationIngress
	Activity entity.ActivityRepository
}

func NewWebhookHandler(ingress AutomationIngress, activity entity.ActivityRepository) *WebhookHandler {
	return &WebhookHandler{Ingress: ingress, Activity: activity}
}

type webhookResponse struct {
	Status string `json:"status"`
}

// HandleStripe recebe eventos de pagamento (payment_intent.succeeded /
// payment_failed). Payload quebrado devolve error no body, nunca 500.
func (h *WebhookHandler) HandleStripe(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeWebhookResult(w, false)
		return
	}

	var event usecase.StripeEvent
	ok := false
	if err := json.Unmarshal(raw, &event); err != nil {
		log.Printf("⚠️ webhook stripe com JSON inválido: %v", err)
	} else {
		ok = h.Ingress.HandleStripeEvent(r.Context(), event)
	}

	h.logWebhookEvent(r.Context(), "stripe", raw, ok)
	middleware.RecordWebhookEvent("stripe", ok)
	writeWebhookResult(w, ok)
}

// HandleMake recebe callbacks do Make.com (producer_confirmation /
// manual_status_update).
func (h *WebhookHandler) HandleMake(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeWebhookResult(w, false)
		return
	}

	var event usecase.MakeEvent
	ok := false
	if err := json.Unmarshal(raw, &event); err != nil {
		log.Printf("⚠️ webhook make.com com JSON inválido: %v", err)
	} else {
		ok = h.Ingress.HandleMakeEvent(r.Context(), event)
	}

	h.logWebhookEvent(r.Context(), "make", raw, ok)
	middleware.RecordWebhookEvent("make", ok)
	writeWebhookResult(w, ok)
}

// logWebhookEvent registra toda entrega no activity_log com o começo do
// payload, para debug posterior.
func (h *WebhookHandler) logWebhookEvent(ctx context.Context, source string, payload []byte, ok bool) {
	if len(payload) > 500 {
		payload = payload[:500]
	}

	entry := &entity.ActivityEntry{
		RelatedLeadID: 0, // evento de sistema, sem lead
		ActivityType:  fmt.Sprintf("Webhook_%s", source),
		PerformedByID: entity.SystemActor,
		Notes:         fmt.Sprintf("Success: %t, Payload: %s", ok, string(payload)),
	}
	if err := h.Activity.Append(ctx, entry); err != nil {
		log.Printf("⚠️ erro ao registrar webhook no activity log: %v", err)
	}
}

func writeWebhookResult(w http.ResponseWriter, ok bool) {
	status := "success"
	if !ok {
		status = "error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(webhookResponse{Status: status})
}
