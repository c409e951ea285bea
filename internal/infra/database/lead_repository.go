package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/commission-crm/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (lead_name, company_name, industry, source, contact_email, contact_phone,
		                   assigned_closer_id, assigned_producer_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING lead_id, lead_status, date_added, last_updated
	`

	return r.DB.QueryRowContext(ctx, query,
		lead.Name,
		nullString(lead.CompanyName),
		nullString(lead.Industry),
		nullString(lead.Source),
		nullString(lead.ContactEmail),
		nullString(lead.ContactPhone),
		lead.AssignedCloserID,
		lead.AssignedProducerID,
		nullString(lead.Notes),
	).Scan(&lead.ID, &lead.Status, &lead.DateAdded, &lead.LastUpdated)
}

func (r *LeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	query := `
		SELECT lead_id, lead_name, company_name, industry, source, contact_email, contact_phone,
		       assigned_closer_id, assigned_producer_id, lead_status, notes, date_added, last_updated
		FROM leads
		WHERE lead_id = $1
	`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

// FindContext carrega o lead com os contatos do closer e producer atribuídos
// em uma única consulta. O contato de lead gen é resolvido pelo dispatcher,
// não aqui (não existe assigned_lead_gen_id na tabela).
func (r *LeadRepository) FindContext(ctx context.Context, id int64) (*entity.LeadContext, error) {
	query := `
		SELECT l.lead_id, l.lead_name, l.company_name, l.industry, l.source, l.contact_email, l.contact_phone,
		       l.assigned_closer_id, l.assigned_producer_id, l.lead_status, l.notes, l.date_added, l.last_updated,
		       c.name, c.email,
		       p.name, p.email
		FROM leads l
		LEFT JOIN team_members c ON l.assigned_closer_id = c.member_id
		LEFT JOIN team_members p ON l.assigned_producer_id = p.member_id
		WHERE l.lead_id = $1
	`

	var (
		lctx                       entity.LeadContext
		company, industry, source  sql.NullString
		email, phone, notes        sql.NullString
		closerID, producerID       sql.NullInt64
		closerName, closerEmail    sql.NullString
		producerName, producerMail sql.NullString
	)

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lctx.Lead.ID, &lctx.Lead.Name, &company, &industry, &source, &email, &phone,
		&closerID, &producerID, &lctx.Lead.Status, &notes, &lctx.Lead.DateAdded, &lctx.Lead.LastUpdated,
		&closerName, &closerEmail,
		&producerName, &producerMail,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	lctx.Lead.CompanyName = company.String
	lctx.Lead.Industry = industry.String
	lctx.Lead.Source = source.String
	lctx.Lead.ContactEmail = email.String
	lctx.Lead.ContactPhone = phone.String
	lctx.Lead.Notes = notes.String
	if closerID.Valid {
		lctx.Lead.AssignedCloserID = &closerID.Int64
	}
	if producerID.Valid {
		lctx.Lead.AssignedProducerID = &producerID.Int64
	}
	lctx.CloserName = closerName.String
	lctx.CloserEmail = closerEmail.String
	lctx.ProducerName = producerName.String
	lctx.ProducerEmail = producerMail.String

	return &lctx, nil
}

func (r *LeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	query := `
		SELECT lead_id, lead_name, company_name, industry, source, contact_email, contact_phone,
		       assigned_closer_id, assigned_producer_id, lead_status, notes, date_added, last_updated
		FROM leads
		ORDER BY date_added DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id int64, status entity.LeadStatus) error {
	query := `
		UPDATE leads
		SET lead_status = $1, last_updated = NOW()
		WHERE lead_id = $2
	`

	result, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var (
		lead                      entity.Lead
		company, industry, source sql.NullString
		email, phone, notes       sql.NullString
		closerID, producerID      sql.NullInt64
	)

	err := row.Scan(
		&lead.ID, &lead.Name, &company, &industry, &source, &email, &phone,
		&closerID, &producerID, &lead.Status, &notes, &lead.DateAdded, &lead.LastUpdated,
	)
	if err != nil {
		return nil, err
	}

	lead.CompanyName = company.String
	lead.Industry = industry.String
	lead.Source = source.String
	lead.ContactEmail = email.String
	lead.ContactPhone = phone.String
	lead.Notes = notes.String
	if closerID.Valid {
		lead.AssignedCloserID = &closerID.Int64
	}
	if producerID.Valid {
		lead.AssignedProducerID = &producerID.Int64
	}
	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
