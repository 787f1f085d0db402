package services

import (
	"context"
	"time"

	"github.com/ArowuTest/adspendwise-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockCampaignRepo struct {
	mock.Mock
}

func (m *mockCampaignRepo) Create(ctx context.Context, campaign *models.Campaign) error {
	return m.Called(ctx, campaign).Error(0)
}

func (m *mockCampaignRepo) FindByID(ctx context.Context, id string) (*models.Campaign, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Campaign)
	return c, args.Error(1)
}

func (m *mockCampaignRepo) FindAll(ctx context.Context, limit int) ([]*models.Campaign, error) {
	args := m.Called(ctx, limit)
	cs, _ := args.Get(0).([]*models.Campaign)
	return cs, args.Error(1)
}

type mockAnalysisRepo struct {
	mock.Mock
}

func (m *mockAnalysisRepo) Create(ctx context.Context, analysis *models.Analysis) error {
	return m.Called(ctx, analysis).Error(0)
}

func (m *mockAnalysisRepo) FindByCampaignID(ctx context.Context, campaignID string, limit int) ([]*models.Analysis, error) {
	args := m.Called(ctx, campaignID, limit)
	as, _ := args.Get(0).([]*models.Analysis)
	return as, args.Error(1)
}

func (m *mockAnalysisRepo) FindAll(ctx context.Context, limit int) ([]*models.Analysis, error) {
	args := m.Called(ctx, limit)
	as, _ := args.Get(0).([]*models.Analysis)
	return as, args.Error(1)
}

func (m *mockAnalysisRepo) ExistsSince(ctx context.Context, campaignID string, since time.Time) (bool, error) {
	args := m.Called(ctx, campaignID, since)
	return args.Bool(0), args.Error(1)
}

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	args := m.Called(ctx, system, prompt)
	return args.String(0), args.Error(1)
}

type mockLocker struct {
	mock.Mock
}

func (m *mockLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	args := m.Called(ctx, key, ttl)
	return func() {}, args.Bool(0), args.Error(1)
}

func intPtr(n int64) *int64       { return &n }
func floatPtr(f float64) *float64 { return &f }

func sampleInput() models.CampaignInput {
	return models.CampaignInput{
		Name:           "Summer Sale",
		Platform:       "Google Ads",
		Impressions:    intPtr(10000),
		Clicks:         intPtr(250),
		Conversions:    intPtr(15),
		Spend:          floatPtr(500),
		Revenue:        floatPtr(1200),
		TargetAudience: "Small business owners",
		AdCopy:         "Save 30% this summer",
	}
}

func sampleCampaign(id string) *models.Campaign {
	return sampleInput().Campaign(id, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
}
