package entity

import (
	"context"
	"errors"
	"time"
)

var ErrLeadNotFound = errors.New("lead não encontrado")

type Lead struct {
	ID                 int64      `json:"lead_id"`
	Name               string     `json:"lead_name"`
	CompanyName        string     `json:"company_name,omitempty"`
	Industry           string     `json:"industry,omitempty"`
	Source             string     `json:"source,omitempty"`
	ContactEmail       string     `json:"contact_email,omitempty"`
	ContactPhone       string     `json:"contact_phone,omitempty"`
	AssignedCloserID   *int64     `json:"assigned_closer_id,omitempty"`
	AssignedProducerID *int64     `json:"assigned_producer_id,omitempty"`
	Status             LeadStatus `json:"lead_status"`
	Notes              string     `json:"notes,omitempty"`
	DateAdded          time.Time  `json:"date_added"`
	LastUpdated        time.Time  `json:"last_updated"`
}

// LeadContext é o snapshot montado uma vez por disparo da automação:
// o lead mais os contatos relacionados (closer, producer, lead gen).
// Os handlers de workflow só leem, nunca mutam.
type LeadContext struct {
	Lead          Lead   `json:"lead"`
	CloserName    string `json:"closer_name,omitempty"`
	CloserEmail   string `json:"closer_email,omitempty"`
	ProducerName  string `json:"producer_name,omitempty"`
	ProducerEmail string `json:"producer_email,omitempty"`
	LeadGenName   string `json:"lead_gen_name,omitempty"`
	LeadGenEmail  string `json:"lead_gen_email,omitempty"`
}

type LeadRepository interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id int64) (*Lead, error)
	// FindContext retorna o lead com os nomes/emails do closer e producer
	// atribuídos em uma única consulta (LEFT JOIN). ErrLeadNotFound se o
	// lead não existir.
	FindContext(ctx context.Context, id int64) (*LeadContext, error)
	List(ctx context.Context) ([]Lead, error)
	UpdateStatus(ctx context.Context, id int64, status LeadStatus) error
}
