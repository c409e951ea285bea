package usecase

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/xavierca1/commission-crm/internal/entity"
)

// StripeEvent é o shape do webhook do Stripe que interessa ao CRM: os IDs de
// deal e lead viajam no metadata do payment intent.
type StripeEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			Metadata struct {
				DealID string `json:"deal_id"`
				LeadID string `json:"lead_id"`
			} `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// MakeEvent é o shape dos callbacks vindos do Make.com.
type MakeEvent struct {
	EventType string `json:"event_type"`
	Data      struct {
		LeadID    string `json:"lead_id"`
		NewStatus string `json:"new_status"`
		OldStatus string `json:"old_status"`
	} `json:"data"`
}

// HandleStripeEvent processa eventos de pagamento. Qualquer payload sem os
// campos necessários retorna false sem efeito colateral: o transporte que
// entrega o webhook não tem como se recuperar de um erro.
func (a *Automation) HandleStripeEvent(ctx context.Context, event StripeEvent) bool {
	switch event.Type {
	case "payment_intent.succeeded":
		dealID, leadID, ok := parseMetadataIDs(event)
		if !ok {
			return false
		}
		return a.HandlePaymentReceived(ctx, leadID, dealID)

	case "payment_intent.payment_failed":
		dealID, leadID, ok := parseMetadataIDs(event)
		if !ok {
			return false
		}
		if err := a.Deals.UpdatePaymentStatus(ctx, dealID, entity.PaymentFailed); err != nil {
			log.Printf("⚠️ erro ao marcar deal %d como Failed: %v", dealID, err)
			return false
		}
		// sem notificação para pagamento falho, só o registro
		a.LogActivity(ctx, leadID, "Payment Failed", entity.SystemActor,
			fmt.Sprintf("Payment failed for deal %d", dealID))
		return true
	}

	return false
}

// HandlePaymentReceived marca o deal como pago, avança o lead para Production
// Started e dispara o workflow do producer direto, sem passar pelo
// HandleStatusChange (logo, sem forward para o Make.com).
func (a *Automation) HandlePaymentReceived(ctx context.Context, leadID, dealID int64) bool {
	if err := a.Deals.UpdatePaymentStatus(ctx, dealID, entity.PaymentPaid); err != nil {
		log.Printf("⚠️ erro ao marcar deal %d como Paid: %v", dealID, err)
		return false
	}

	if err := a.Leads.UpdateStatus(ctx, leadID, entity.StatusProductionStarted); err != nil {
		log.Printf("⚠️ erro ao avançar lead %d para Production Started: %v", leadID, err)
		return false
	}

	if lctx := a.loadLeadContext(ctx, leadID); lctx != nil {
		a.notifyProducerNewProject(ctx, lctx)
	}
	return true
}

// HandleMakeEvent processa callbacks do motor de workflow externo.
func (a *Automation) HandleMakeEvent(ctx context.Context, event MakeEvent) bool {
	switch event.EventType {
	case "producer_confirmation":
		leadID, err := strconv.ParseInt(event.Data.LeadID, 10, 64)
		if err != nil {
			return false
		}
		a.HandleProducerConfirmation(ctx, leadID)
		return true

	case "manual_status_update":
		leadID, err := strconv.ParseInt(event.Data.LeadID, 10, 64)
		if err != nil || event.Data.NewStatus == "" {
			return false
		}
		a.HandleStatusChange(ctx, leadID,
			entity.LeadStatus(event.Data.OldStatus), entity.LeadStatus(event.Data.NewStatus))
		return true
	}

	return false
}

// HandleProducerConfirmation dispara o workflow de comissões direto para o
// lead, sem forward (mesmo atalho do pagamento recebido).
func (a *Automation) HandleProducerConfirmation(ctx context.Context, leadID int64) {
	if lctx := a.loadLeadContext(ctx, leadID); lctx != nil {
		a.calculateAndNotifyCommissions(ctx, lctx)
	}
}

func parseMetadataIDs(event StripeEvent) (dealID, leadID int64, ok bool) {
	meta := event.Data.Object.Metadata
	if meta.DealID == "" || meta.LeadID == "" {
		return 0, 0, false
	}
	dealID, err := strconv.ParseInt(meta.DealID, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	leadID, err = strconv.ParseInt(meta.LeadID, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return dealID, leadID, true
}
