package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/commission-crm/internal/entity"
)

type ActivityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

// Append grava uma entrada nova. O log é append-only: não existe update nem
// delete neste repositório de propósito.
func (r *ActivityRepository) Append(ctx context.Context, entry *entity.ActivityEntry) error {
	query := `
		INSERT INTO activity_log (related_lead_id, activity_type, performed_by_id, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING activity_id, timestamp
	`

	return r.DB.QueryRowContext(ctx, query,
		entry.RelatedLeadID,
		entry.ActivityType,
		entry.PerformedByID,
		nullString(entry.Notes),
	).Scan(&entry.ID, &entry.Timestamp)
}

func (r *ActivityRepository) List(ctx context.Context, limit int) ([]entity.ActivityEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT activity_id, related_lead_id, activity_type, timestamp, performed_by_id, notes
		FROM activity_log
		ORDER BY timestamp DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []entity.ActivityEntry
	for rows.Next() {
		var (
			entry entity.ActivityEntry
			notes sql.NullString
		)
		if err := rows.Scan(&entry.ID, &entry.RelatedLeadID, &entry.ActivityType,
			&entry.Timestamp, &entry.PerformedByID, &notes); err != nil {
			return nil, err
		}
		entry.Notes = notes.String
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
