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

func newLeadRepo(t *testing.T) (*LeadRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewLeadRepository(db), mock
}

func TestLeadRepositoryUpdateStatus(t *testing.T) {
	repo, mock := newLeadRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("SET lead_status = $1")).
		WithArgs(entity.StatusCallBooked, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 3, entity.StatusCallBooked)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepositoryUpdateStatusNotFound(t *testing.T) {
	repo, mock := newLeadRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("SET lead_status = $1")).
		WithArgs(entity.StatusCallBooked, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 99, entity.StatusCallBooked)

	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestLeadRepositoryFindByIDNotFound(t *testing.T) {
	repo, mock := newLeadRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE lead_id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"lead_id"}))

	lead, err := repo.FindByID(context.Background(), 99)

	assert.Nil(t, lead)
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestLeadRepositoryFindContextJoinsTeam(t *testing.T) {
	repo, mock := newLeadRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"lead_id", "lead_name", "company_name", "industry", "source", "contact_email", "contact_phone",
		"assigned_closer_id", "assigned_producer_id", "lead_status", "notes", "date_added", "last_updated",
		"c_name", "c_email", "p_name", "p_email",
	}).AddRow(
		int64(1), "Big Fish Media", "Big Fish LLC", nil, nil, "client@bigfish.com", nil,
		int64(2), nil, string(entity.StatusCallBooked), nil, now, now,
		"Jane Doe", "jane@agency.com", nil, nil,
	)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN team_members c")).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	lctx, err := repo.FindContext(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, "Big Fish Media", lctx.Lead.Name)
	assert.Equal(t, entity.StatusCallBooked, lctx.Lead.Status)
	assert.Equal(t, "Jane Doe", lctx.CloserName)
	assert.Equal(t, "jane@agency.com", lctx.CloserEmail)
	// producer não atribuído: contatos ficam vazios e o ponteiro nil
	assert.Empty(t, lctx.ProducerEmail)
	assert.Nil(t, lctx.Lead.AssignedProducerID)
	assert.Equal(t, int64(2), *lctx.Lead.AssignedCloserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepositoryFindContextNotFound(t *testing.T) {
	repo, mock := newLeadRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN team_members c")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"lead_id"}))

	lctx, err := repo.FindContext(context.Background(), 99)

	assert.Nil(t, lctx)
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}
