package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/ArowuTest/adspendwise-backend/internal/models"
)

// ErrNotFound is returned when a lookup matches no document
var ErrNotFound = errors.New("document not found")

// CampaignRepository defines the interface for campaign data operations
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	FindByID(ctx context.Context, id string) (*models.Campaign, error)
	FindAll(ctx context.Context, limit int) ([]*models.Campaign, error)
}

// AnalysisRepository defines the interface for analysis data operations
type AnalysisRepository interface {
	Create(ctx context.Context, analysis *models.Analysis) error
	FindByCampaignID(ctx context.Context, campaignID string, limit int) ([]*models.Analysis, error)
	FindAll(ctx context.Context, limit int) ([]*models.Analysis, error)
	// ExistsSince reports whether the campaign has an analysis created at or after since
	ExistsSince(ctx context.Context, campaignID string, since time.Time) (bool, error)
}
