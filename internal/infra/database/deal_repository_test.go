package database

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/commission-crm/internal/entity"
)

func newDealRepo(t *testing.T) (*DealRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDealRepository(db), mock
}

func dealRows(id, leadID int64, value float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"deal_id", "lead_id", "deal_value", "deal_stage", "close_date", "payment_status",
		"stripe_payment_link", "commission_lead_gen", "commission_closer", "commission_producer", "total_commission",
	}).AddRow(id, leadID, value, "Won", time.Now(), entity.PaymentPending, nil, nil, nil, nil, nil)
}

func TestDealRepositoryCreateDefaultsPending(t *testing.T) {
	repo, mock := newDealRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO deals")).
		WithArgs(int64(3), 5000.00, "Won", nil, entity.PaymentPending, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"deal_id"}).AddRow(int64(42)))

	deal := &entity.Deal{LeadID: 3, Value: 5000.00, Stage: "Won"}
	err := repo.Create(context.Background(), deal)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), deal.ID)
	assert.Equal(t, entity.PaymentPending, deal.PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepositoryFindLatestByLeadID(t *testing.T) {
	repo, mock := newDealRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY deal_id DESC")).
		WithArgs(int64(3)).
		WillReturnRows(dealRows(42, 3, 5000.00))

	deal, err := repo.FindLatestByLeadID(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), deal.ID)
	assert.Equal(t, 5000.00, deal.Value)
	assert.Nil(t, deal.StripePaymentLink)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepositoryFindLatestNotFound(t *testing.T) {
	repo, mock := newDealRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY deal_id DESC")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"deal_id"}))

	deal, err := repo.FindLatestByLeadID(context.Background(), 99)

	assert.Nil(t, deal)
	assert.ErrorIs(t, err, entity.ErrDealNotFound)
}

func TestDealRepositoryFindLatestPaidFiltersStatus(t *testing.T) {
	repo, mock := newDealRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("payment_status = 'Paid'")).
		WithArgs(int64(3)).
		WillReturnRows(dealRows(42, 3, 3000.00))

	deal, err := repo.FindLatestPaidByLeadID(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, 3000.00, deal.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepositoryUpdateCommissions(t *testing.T) {
	repo, mock := newDealRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("SET commission_lead_gen = $1")).
		WithArgs(400.00, 500.00, 400.00, 1300.00, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateCommissions(context.Background(), 42, 400.00, 500.00, 400.00, 1300.00)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepositoryUpdatePaymentLink(t *testing.T) {
	repo, mock := newDealRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("SET stripe_payment_link = $1")).
		WithArgs("https://stripe.com/invoice/pay/42", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePaymentLink(context.Background(), 42, "https://stripe.com/invoice/pay/42")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
