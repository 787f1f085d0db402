package services

import (
	"context"
	"errors"
	"io"

	"github.com/ArowuTest/adspendwise-backend/internal/models"
)

// ErrCampaignNotFound is returned when a referenced campaign does not exist
var ErrCampaignNotFound = errors.New("campaign not found")

// ValidationError wraps a rejected campaign submission
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return "invalid campaign: " + e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// CampaignService defines the interface for campaign operations
type CampaignService interface {
	// Create validates and stores a single campaign
	Create(ctx context.Context, in models.CampaignInput) (*models.Campaign, error)

	// Get retrieves a campaign by its ID
	Get(ctx context.Context, id string) (*models.Campaign, error)

	// List retrieves up to limit campaigns
	List(ctx context.Context, limit int) ([]*models.Campaign, error)

	// Import parses a campaign CSV and stores every row, or none if any row is invalid
	Import(ctx context.Context, r io.Reader) ([]*models.Campaign, error)
}

// AnalysisService defines the interface for AI analysis operations
type AnalysisService interface {
	// Analyze produces and stores a new analysis for a campaign. Failures of
	// the AI service never surface here; a synthetic analysis is stored instead.
	Analyze(ctx context.Context, campaignID string) (*models.Analysis, error)

	// ListForCampaign retrieves the analyses of a campaign
	ListForCampaign(ctx context.Context, campaignID string, limit int) ([]*models.Analysis, error)

	// BulkAnalyze analyzes every campaign without an analysis in the freshness window
	BulkAnalyze(ctx context.Context) ([]*models.Analysis, error)
}

// DashboardService defines the interface for dashboard aggregates
type DashboardService interface {
	Summary(ctx context.Context) (*models.DashboardSummary, error)
}
