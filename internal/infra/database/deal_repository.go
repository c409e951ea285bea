package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/commission-crm/internal/entity"
)

type DealRepository struct {
	DB *sql.DB
}

func NewDealRepository(db *sql.DB) *DealRepository {
	return &DealRepository{DB: db}
}

const dealColumns = `deal_id, lead_id, deal_value, deal_stage, close_date, payment_status,
	stripe_payment_link, commission_lead_gen, commission_closer, commission_producer, total_commission`

func (r *DealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	if deal.PaymentStatus == "" {
		deal.PaymentStatus = entity.PaymentPending
	}

	query := `
		INSERT INTO deals (lead_id, deal_value, deal_stage, close_date, payment_status,
		                   commission_lead_gen, commission_closer, commission_producer, total_commission)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING deal_id
	`

	return r.DB.QueryRowContext(ctx, query,
		deal.LeadID,
		deal.Value,
		nullString(deal.Stage),
		deal.CloseDate,
		deal.PaymentStatus,
		deal.CommissionLeadGen,
		deal.CommissionCloser,
		deal.CommissionProducer,
		deal.TotalCommission,
	).Scan(&deal.ID)
}

// FindLatestByLeadID retorna o deal mais recente do lead. É sempre esse
// registro que a automação lê e atualiza.
func (r *DealRepository) FindLatestByLeadID(ctx context.Context, leadID int64) (*entity.Deal, error) {
	query := `
		SELECT ` + dealColumns + `
		FROM deals
		WHERE lead_id = $1
		ORDER BY deal_id DESC
		LIMIT 1
	`
	return r.findOne(ctx, query, leadID)
}

func (r *DealRepository) FindLatestPaidByLeadID(ctx context.Context, leadID int64) (*entity.Deal, error) {
	query := `
		SELECT ` + dealColumns + `
		FROM deals
		WHERE lead_id = $1 AND payment_status = 'Paid'
		ORDER BY deal_id DESC
		LIMIT 1
	`
	return r.findOne(ctx, query, leadID)
}

func (r *DealRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Deal, error) {
	deal, err := scanDeal(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrDealNotFound
	}
	return deal, err
}

func (r *DealRepository) List(ctx context.Context) ([]entity.Deal, error) {
	query := `
		SELECT ` + dealColumns + `
		FROM deals
		ORDER BY deal_id DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deals []entity.Deal
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, err
		}
		deals = append(deals, *deal)
	}
	return deals, rows.Err()
}

func (r *DealRepository) UpdatePaymentLink(ctx context.Context, dealID int64, link string) error {
	query := `
		UPDATE deals
		SET stripe_payment_link = $1
		WHERE deal_id = $2
	`
	_, err := r.DB.ExecContext(ctx, query, link, dealID)
	return err
}

func (r *DealRepository) UpdatePaymentStatus(ctx context.Context, dealID int64, status string) error {
	query := `
		UPDATE deals
		SET payment_status = $1
		WHERE deal_id = $2
	`
	_, err := r.DB.ExecContext(ctx, query, status, dealID)
	return err
}

// UpdateCommissions grava as quatro parcelas, sobrescrevendo valores
// anteriores (o workflow de comissão é idempotente).
func (r *DealRepository) UpdateCommissions(ctx context.Context, dealID int64, leadGen, closer, producer, total float64) error {
	query := `
		UPDATE deals
		SET commission_lead_gen = $1,
		    commission_closer = $2,
		    commission_producer = $3,
		    total_commission = $4
		WHERE deal_id = $5
	`
	_, err := r.DB.ExecContext(ctx, query, leadGen, closer, producer, total, dealID)
	return err
}

func scanDeal(row rowScanner) (*entity.Deal, error) {
	var (
		deal      entity.Deal
		stage     sql.NullString
		closeDate sql.NullTime
		link      sql.NullString
		cLeadGen  sql.NullFloat64
		cCloser   sql.NullFloat64
		cProducer sql.NullFloat64
		cTotal    sql.NullFloat64
	)

	err := row.Scan(
		&deal.ID, &deal.LeadID, &deal.Value, &stage, &closeDate, &deal.PaymentStatus,
		&link, &cLeadGen, &cCloser, &cProducer, &cTotal,
	)
	if err != nil {
		return nil, err
	}

	deal.Stage = stage.String
	if closeDate.Valid {
		deal.CloseDate = &closeDate.Time
	}
	if link.Valid {
		deal.StripePaymentLink = &link.String
	}
	if cLeadGen.Valid {
		deal.CommissionLeadGen = &cLeadGen.Float64
	}
	if cCloser.Valid {
		deal.CommissionCloser = &cCloser.Float64
	}
	if cProducer.Valid {
		deal.CommissionProducer = &cProducer.Float64
	}
	if cTotal.Valid {
		deal.TotalCommission = &cTotal.Float64
	}
	return &deal, nil
}
