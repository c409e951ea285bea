package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/commission-crm/internal/entity"
	"github.com/xavierca1/commission-crm/internal/usecase"
)

type mockIngress struct {
	mock.Mock
}

func (m *mockIngress) HandleStripeEvent(ctx context.Context, event usecase.StripeEvent) bool {
	return m.Called(ctx, event).Bool(0)
}

func (m *mockIngress) HandleMakeEvent(ctx context.Context, event usecase.MakeEvent) bool {
	return m.Called(ctx, event).Bool(0)
}

type mockActivityRepo struct {
	mock.Mock
}

func (m *mockActivityRepo) Append(ctx context.Context, entry *entity.ActivityEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockActivityRepo) List(ctx context.Context, limit int) ([]entity.ActivityEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ActivityEntry), args.Error(1)
}

func webhookStatus(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["status"]
}

func TestHandleStripeSuccess(t *testing.T) {
	ingress := new(mockIngress)
	activity := new(mockActivityRepo)
	handler := NewWebhookHandler(ingress, activity)

	ingress.On("HandleStripeEvent", mock.Anything, mock.MatchedBy(func(e usecase.StripeEvent) bool {
		return e.Type == "payment_intent.succeeded" && e.Data.Object.Metadata.DealID == "7"
	})).Return(true)
	activity.On("Append", mock.Anything, mock.MatchedBy(func(entry *entity.ActivityEntry) bool {
		return entry.ActivityType == "Webhook_stripe" &&
			entry.PerformedByID == entity.SystemActor &&
			strings.HasPrefix(entry.Notes, "Success: true")
	})).Return(nil)

	payload := `{"type": "payment_intent.succeeded", "data": {"object": {"metadata": {"deal_id": "7", "lead_id": "3"}}}}`
	req := httptest.NewRequest("POST", "/webhook/stripe", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	handler.HandleStripe(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", webhookStatus(t, rec))
	activity.AssertNumberOfCalls(t, "Append", 1)
}

// O transporte de webhook não tem retry inteligente: payload quebrado ainda
// responde 200, só com status error no body.
func TestHandleStripeInvalidJSON(t *testing.T) {
	ingress := new(mockIngress)
	activity := new(mockActivityRepo)
	handler := NewWebhookHandler(ingress, activity)

	activity.On("Append", mock.Anything, mock.Anything).Return(nil)

	req := httptest.NewRequest("POST", "/webhook/stripe", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	handler.HandleStripe(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "error", webhookStatus(t, rec))
	ingress.AssertNotCalled(t, "HandleStripeEvent", mock.Anything, mock.Anything)
}

func TestHandleStripeUnprocessedEvent(t *testing.T) {
	ingress := new(mockIngress)
	activity := new(mockActivityRepo)
	handler := NewWebhookHandler(ingress, activity)

	ingress.On("HandleStripeEvent", mock.Anything, mock.Anything).Return(false)
	activity.On("Append", mock.Anything, mock.MatchedBy(func(entry *entity.ActivityEntry) bool {
		return strings.HasPrefix(entry.Notes, "Success: false")
	})).Return(nil)

	req := httptest.NewRequest("POST", "/webhook/stripe", strings.NewReader(`{"type": "charge.refunded"}`))
	rec := httptest.NewRecorder()

	handler.HandleStripe(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "error", webhookStatus(t, rec))
}

func TestHandleMakeSuccess(t *testing.T) {
	ingress := new(mockIngress)
	activity := new(mockActivityRepo)
	handler := NewWebhookHandler(ingress, activity)

	ingress.On("HandleMakeEvent", mock.Anything, mock.MatchedBy(func(e usecase.MakeEvent) bool {
		return e.EventType == "producer_confirmation" && e.Data.LeadID == "1"
	})).Return(true)
	activity.On("Append", mock.Anything, mock.MatchedBy(func(entry *entity.ActivityEntry) bool {
		return entry.ActivityType == "Webhook_make"
	})).Return(nil)

	payload := `{"event_type": "producer_confirmation", "data": {"lead_id": "1"}}`
	req := httptest.NewRequest("POST", "/webhook/make", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	handler.HandleMake(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", webhookStatus(t, rec))
}

// Payload longo é truncado antes de ir para o activity log.
func TestWebhookLogTruncatesPayload(t *testing.T) {
	ingress := new(mockIngress)
	activity := new(mockActivityRepo)
	handler := NewWebhookHandler(ingress, activity)

	ingress.On("HandleMakeEvent", mock.Anything, mock.Anything).Return(false)
	activity.On("Append", mock.Anything, mock.MatchedBy(func(entry *entity.ActivityEntry) bool {
		return len(entry.Notes) < 600
	})).Return(nil)

	payload := `{"event_type": "` + strings.Repeat("x", 2000) + `"}`
	req := httptest.NewRequest("POST", "/webhook/make", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	handler.HandleMake(rec, req)

	activity.AssertExpectations(t)
}
