package services

import (
	"context"
	"fmt"

	"github.com/ArowuTest/adspendwise-backend/internal/kpi"
	"github.com/ArowuTest/adspendwise-backend/internal/models"
	"github.com/ArowuTest/adspendwise-backend/internal/repositories"
	"github.com/shopspring/decimal"
)

// Compile-time check to ensure DashboardServiceImpl implements DashboardService
var _ DashboardService = (*DashboardServiceImpl)(nil)

// DashboardServiceImpl computes dashboard aggregates
type DashboardServiceImpl struct {
	campaignRepo repositories.CampaignRepository
	analysisRepo repositories.AnalysisRepository
}

// NewDashboardService creates a new DashboardServiceImpl
func NewDashboardService(campaignRepo repositories.CampaignRepository, analysisRepo repositories.AnalysisRepository) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		campaignRepo: campaignRepo,
		analysisRepo: analysisRepo,
	}
}

// Summary returns campaign and analysis aggregates. With no campaigns every
// value is zero.
func (s *DashboardServiceImpl) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	campaigns, err := s.campaignRepo.FindAll(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	summary := &models.DashboardSummary{}
	if len(campaigns) == 0 {
		return summary, nil
	}

	// Sum currency exactly, then convert once
	spend, revenue := decimal.Zero, decimal.Zero
	for _, c := range campaigns {
		spend = spend.Add(decimal.NewFromFloat(c.Spend))
		revenue = revenue.Add(decimal.NewFromFloat(c.Revenue))
	}

	analyses, err := s.analysisRepo.FindAll(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}

	summary.TotalCampaigns = int64(len(campaigns))
	summary.TotalSpend = spend.InexactFloat64()
	summary.TotalRevenue = revenue.InexactFloat64()
	summary.AvgROI = kpi.AggregateROI(summary.TotalSpend, summary.TotalRevenue)
	summary.TotalAnalyses = int64(len(analyses))

	if len(analyses) > 0 {
		var total int64
		for _, a := range analyses {
			total += int64(a.OverallScore)
		}
		summary.AvgScore = float64(total) / float64(len(analyses))
	}

	return summary, nil
}
