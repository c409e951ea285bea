package entity

import (
	"context"
	"time"
)

type CallMeeting struct {
	ID            int64     `json:"call_id"`
	LeadID        int64     `json:"lead_id"`
	CallDatetime  time.Time `json:"call_datetime"`
	CallOutcome   string    `json:"call_outcome,omitempty"`
	NotesSummary  string    `json:"notes_summary,omitempty"`
	RecordingLink string    `json:"recording_link,omitempty"`
}

type CallMeetingRepository interface {
	Create(ctx context.Context, call *CallMeeting) error
	// FindLatestByLeadID retorna a call mais recente do lead ou nil se não
	// houver nenhuma.
	FindLatestByLeadID(ctx context.Context, leadID int64) (*CallMeeting, error)
	ListByLeadID(ctx context.Context, leadID int64) ([]CallMeeting, error)
}
