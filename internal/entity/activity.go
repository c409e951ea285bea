package entity

import (
	"context"
	"time"
)

// SystemActor marca entradas geradas pelo próprio sistema (webhooks,
// automações) no activity_log.
const SystemActor int64 = 0

// ActivityEntry é append-only: nunca é alterada nem removida.
type ActivityEntry struct {
	ID            int64     `json:"activity_id"`
	RelatedLeadID int64     `json:"related_lead_id"`
	ActivityType  string    `json:"activity_type"`
	Timestamp     time.Time `json:"timestamp"`
	PerformedByID int64     `json:"performed_by_id"`
	Notes         string    `json:"notes,omitempty"`
}

type ActivityRepository interface {
	Append(ctx context.Context, entry *ActivityEntry) error
	List(ctx context.Context, limit int) ([]ActivityEntry, error)
}
