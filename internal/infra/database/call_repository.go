package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/commission-crm/internal/entity"
)

type CallMeetingRepository struct {
	DB *sql.DB
}

func NewCallMeetingRepository(db *sql.DB) *CallMeetingRepository {
	return &CallMeetingRepository{DB: db}
}

func (r *CallMeetingRepository) Create(ctx context.Context, call *entity.CallMeeting) error {
	query := `
		INSERT INTO calls_meetings (lead_id, call_datetime, call_outcome, notes_summary, recording_link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING call_id
	`

	return r.DB.QueryRowContext(ctx, query,
		call.LeadID,
		call.CallDatetime,
		nullString(call.CallOutcome),
		nullString(call.NotesSummary),
		nullString(call.RecordingLink),
	).Scan(&call.ID)
}

// FindLatestByLeadID retorna a call mais recente do lead; a automação só olha
// essa. nil sem erro quando o lead não tem nenhuma call.
func (r *CallMeetingRepository) FindLatestByLeadID(ctx context.Context, leadID int64) (*entity.CallMeeting, error) {
	query := `
		SELECT call_id, lead_id, call_datetime, call_outcome, notes_summary, recording_link
		FROM calls_meetings
		WHERE lead_id = $1
		ORDER BY call_datetime DESC
		LIMIT 1
	`

	call, err := scanCall(r.DB.QueryRowContext(ctx, query, leadID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return call, err
}

func (r *CallMeetingRepository) ListByLeadID(ctx context.Context, leadID int64) ([]entity.CallMeeting, error) {
	query := `
		SELECT call_id, lead_id, call_datetime, call_outcome, notes_summary, recording_link
		FROM calls_meetings
		WHERE lead_id = $1
		ORDER BY call_datetime DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calls []entity.CallMeeting
	for rows.Next() {
		call, err := scanCall(rows)
		if err != nil {
			return nil, err
		}
		calls = append(calls, *call)
	}
	return calls, rows.Err()
}

func scanCall(row rowScanner) (*entity.CallMeeting, error) {
	var (
		call                      entity.CallMeeting
		outcome, notes, recording sql.NullString
	)

	err := row.Scan(&call.ID, &call.LeadID, &call.CallDatetime, &outcome, &notes, &recording)
	if err != nil {
		return nil, err
	}

	call.CallOutcome = outcome.String
	call.NotesSummary = notes.String
	call.RecordingLink = recording.String
	return &call, nil
}
