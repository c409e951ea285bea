package entity

import (
	"context"
	"errors"
	"time"
)

var ErrDealNotFound = errors.New("deal não encontrado")

// Estados de pagamento do deal (coluna payment_status).
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentOverdue = "Overdue"
	PaymentFailed  = "Failed"
)

type Deal struct {
	ID                 int64      `json:"deal_id"`
	LeadID             int64      `json:"lead_id"`
	Value              float64    `json:"deal_value"`
	Stage              string     `json:"deal_stage"` // Proposal Sent, Negotiation, Won, Lost
	CloseDate          *time.Time `json:"close_date,omitempty"`
	PaymentStatus      string     `json:"payment_status"`
	StripePaymentLink  *string    `json:"stripe_payment_link,omitempty"`
	CommissionLeadGen  *float64   `json:"commission_lead_gen,omitempty"`
	CommissionCloser   *float64   `json:"commission_closer,omitempty"`
	CommissionProducer *float64   `json:"commission_producer,omitempty"`
	TotalCommission    *float64   `json:"total_commission,omitempty"`
}

type DealRepository interface {
	Create(ctx context.Context, deal *Deal) error
	// FindLatestByLeadID retorna o deal mais recente do lead (deal_id DESC).
	// A automação sempre opera sobre esse registro.
	FindLatestByLeadID(ctx context.Context, leadID int64) (*Deal, error)
	// FindLatestPaidByLeadID como acima, mas restrito a payment_status = Paid.
	FindLatestPaidByLeadID(ctx context.Context, leadID int64) (*Deal, error)
	List(ctx context.Context) ([]Deal, error)
	UpdatePaymentLink(ctx context.Context, dealID int64, link string) error
	UpdatePaymentStatus(ctx context.Context, dealID int64, status string) error
	UpdateCommissions(ctx context.Context, dealID int64, leadGen, closer, producer, total float64) error
}
