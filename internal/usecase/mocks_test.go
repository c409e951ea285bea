package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/commission-crm/internal/entity"
	"github.com/xavierca1/commission-crm/internal/infra/integration/discord"
	"github.com/xavierca1/commission-crm/internal/infra/integration/stripe"
	"github.com/xavierca1/commission-crm/internal/usecase"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindContext(ctx context.Context, id int64) (*entity.LeadContext, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeadContext), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id int64, status entity.LeadStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockDealRepository
type MockDealRepository struct {
	mock.Mock
}

func (m *MockDealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	args := m.Called(ctx, deal)
	return args.Error(0)
}

func (m *MockDealRepository) FindLatestByLeadID(ctx context.Context, leadID int64) (*entity.Deal, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Deal), args.Error(1)
}

func (m *MockDealRepository) FindLatestPaidByLeadID(ctx context.Context, leadID int64) (*entity.Deal, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Deal), args.Error(1)
}

func (m *MockDealRepository) List(ctx context.Context) ([]entity.Deal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Deal), args.Error(1)
}

func (m *MockDealRepository) UpdatePaymentLink(ctx context.Context, dealID int64, link string) error {
	args := m.Called(ctx, dealID, link)
	return args.Error(0)
}

func (m *MockDealRepository) UpdatePaymentStatus(ctx context.Context, dealID int64, status string) error {
	args := m.Called(ctx, dealID, status)
	return args.Error(0)
}

func (m *MockDealRepository) UpdateCommissions(ctx context.Context, dealID int64, leadGen, closer, producer, total float64) error {
	args := m.Called(ctx, dealID, leadGen, closer, producer, total)
	return args.Error(0)
}

// MockCallRepository
type MockCallRepository struct {
	mock.Mock
}

func (m *MockCallRepository) Create(ctx context.Context, call *entity.CallMeeting) error {
	args := m.Called(ctx, call)
	return args.Error(0)
}

func (m *MockCallRepository) FindLatestByLeadID(ctx context.Context, leadID int64) (*entity.CallMeeting, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CallMeeting), args.Error(1)
}

func (m *MockCallRepository) ListByLeadID(ctx context.Context, leadID int64) ([]entity.CallMeeting, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CallMeeting), args.Error(1)
}

// MockTeamRepository
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, member *entity.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamRepository) List(ctx context.Context) ([]entity.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) FindFirstByRole(ctx context.Context, role string) (*entity.TeamMember, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TeamMember), args.Error(1)
}

// MockActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Append(ctx context.Context, entry *entity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) List(ctx context.Context, limit int) ([]entity.ActivityEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ActivityEntry), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) Send(to, subject, htmlBody string) error {
	args := m.Called(to, subject, htmlBody)
	return args.Error(0)
}

// MockChatService
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Send(content string, embed *discord.Embed) error {
	args := m.Called(content, embed)
	return args.Error(0)
}

// MockEventForwarder
type MockEventForwarder struct {
	mock.Mock
}

func (m *MockEventForwarder) Forward(ctx context.Context, eventType string, data map[string]any) error {
	args := m.Called(ctx, eventType, data)
	return args.Error(0)
}

// MockPaymentLinkProvider
type MockPaymentLinkProvider struct {
	mock.Mock
}

func (m *MockPaymentLinkProvider) CreatePaymentLink(ctx context.Context, input stripe.PaymentLinkInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

// autoMocks agrupa todos os mocks de uma automação de teste.
type autoMocks struct {
	leads    *MockLeadRepository
	deals    *MockDealRepository
	calls    *MockCallRepository
	team     *MockTeamRepository
	activity *MockActivityRepository
	email    *MockEmailService
	chat     *MockChatService
	forward  *MockEventForwarder
	payments *MockPaymentLinkProvider
}

func newTestAutomation(cfg entity.Config) (*usecase.Automation, *autoMocks) {
	m := &autoMocks{
		leads:    new(MockLeadRepository),
		deals:    new(MockDealRepository),
		calls:    new(MockCallRepository),
		team:     new(MockTeamRepository),
		activity: new(MockActivityRepository),
		email:    new(MockEmailService),
		chat:     new(MockChatService),
		forward:  new(MockEventForwarder),
		payments: new(MockPaymentLinkProvider),
	}

	if cfg == nil {
		cfg = entity.Config{}
	}

	automation := usecase.NewAutomation(
		m.leads, m.deals, m.calls, m.team, m.activity,
		m.email, m.chat, m.forward, m.payments,
		cfg,
	)
	return automation, m
}
