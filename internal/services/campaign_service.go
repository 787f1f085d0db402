package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ArowuTest/adspendwise-backend/internal/metrics"
	"github.com/ArowuTest/adspendwise-backend/internal/models"
	"github.com/ArowuTest/adspendwise-backend/internal/repositories"
	"github.com/ArowuTest/adspendwise-backend/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure CampaignServiceImpl implements CampaignService
var _ CampaignService = (*CampaignServiceImpl)(nil)

// CampaignServiceImpl handles campaign creation, lookup and CSV import
type CampaignServiceImpl struct {
	campaignRepo repositories.CampaignRepository
	metrics      *metrics.Metrics

	now   func() time.Time
	newID func() string
}

// NewCampaignService creates a new CampaignServiceImpl
func NewCampaignService(campaignRepo repositories.CampaignRepository, m *metrics.Metrics) *CampaignServiceImpl {
	return &CampaignServiceImpl{
		campaignRepo: campaignRepo,
		metrics:      m,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// Create validates and stores a single campaign
func (s *CampaignServiceImpl) Create(ctx context.Context, in models.CampaignInput) (*models.Campaign, error) {
	if err := in.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}
	return s.store(ctx, in)
}

// store is the single creation path shared by Create and Import
func (s *CampaignServiceImpl) store(ctx context.Context, in models.CampaignInput) (*models.Campaign, error) {
	campaign := in.Campaign(s.newID(), s.now().UTC())

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("failed to store campaign: %w", err)
	}

	slog.Info("Campaign created", "campaignID", campaign.ID, "name", campaign.Name, "platform", campaign.Platform)
	return campaign, nil
}

// Get retrieves a campaign by its ID
func (s *CampaignServiceImpl) Get(ctx context.Context, id string) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to retrieve campaign: %w", err)
	}
	return campaign, nil
}

// List retrieves up to limit campaigns
func (s *CampaignServiceImpl) List(ctx context.Context, limit int) ([]*models.Campaign, error) {
	return s.campaignRepo.FindAll(ctx, limit)
}

// Import parses a campaign CSV and stores every row. Nothing is stored when
// the header or any row is invalid.
func (s *CampaignServiceImpl) Import(ctx context.Context, r io.Reader) ([]*models.Campaign, error) {
	inputs, err := utils.ParseCampaigns(r)
	if err != nil {
		slog.Warn("Campaign import rejected", "error", err)
		return nil, err
	}

	created := make([]*models.Campaign, 0, len(inputs))
	for _, in := range inputs {
		campaign, err := s.store(ctx, in)
		if err != nil {
			return created, err
		}
		created = append(created, campaign)
		s.metrics.CampaignsImported.Inc()
	}

	slog.Info("Campaign import finished", "created", len(created))
	return created, nil
}
