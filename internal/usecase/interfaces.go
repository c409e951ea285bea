package usecase

import (
	"context"

	"github.com/xavierca1/commission-crm/internal/infra/integration/discord"
	"github.com/xavierca1/commission-crm/internal/infra/integration/stripe"
)

type EmailService interface {
	Send(to, subject, htmlBody string) error
}

type ChatService interface {
	Send(content string, embed *discord.Embed) error
}

// EventForwarder repassa eventos para o motor de workflow externo (Make.com).
type EventForwarder interface {
	Forward(ctx context.Context, eventType string, data map[string]any) error
}

type PaymentLinkProvider interface {
	CreatePaymentLink(ctx context.Context, input stripe.PaymentLinkInput) (string, error)
}
