package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ArowuTest/adspendwise-backend/internal/analyzer"
	"github.com/ArowuTest/adspendwise-backend/internal/kpi"
	"github.com/ArowuTest/adspendwise-backend/internal/lock"
	"github.com/ArowuTest/adspendwise-backend/internal/metrics"
	"github.com/ArowuTest/adspendwise-backend/internal/models"
	"github.com/ArowuTest/adspendwise-backend/internal/repositories"
	"github.com/ArowuTest/adspendwise-backend/pkg/llm"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const (
	// FreshnessWindow is how recent an analysis must be for bulk analysis to skip its campaign
	FreshnessWindow = time.Hour

	// bulkScanLimit caps how many campaigns one bulk analysis scans
	bulkScanLimit = 1000

	bulkLockTTL = 5 * time.Minute
)

// Compile-time check to ensure AnalysisServiceImpl implements AnalysisService
var _ AnalysisService = (*AnalysisServiceImpl)(nil)

// AnalysisServiceImpl runs campaigns through the AI analysis pipeline
type AnalysisServiceImpl struct {
	campaignRepo repositories.CampaignRepository
	analysisRepo repositories.AnalysisRepository
	completer    llm.Completer
	locker       lock.Locker
	metrics      *metrics.Metrics

	now   func() time.Time
	newID func() string
}

// NewAnalysisService creates a new AnalysisServiceImpl. A nil locker disables
// bulk analysis locking.
func NewAnalysisService(
	campaignRepo repositories.CampaignRepository,
	analysisRepo repositories.AnalysisRepository,
	completer llm.Completer,
	locker lock.Locker,
	m *metrics.Metrics,
) *AnalysisServiceImpl {
	if locker == nil {
		locker = lock.Noop{}
	}
	return &AnalysisServiceImpl{
		campaignRepo: campaignRepo,
		analysisRepo: analysisRepo,
		completer:    completer,
		locker:       locker,
		metrics:      m,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// Analyze computes KPIs, asks the AI service for an analysis, normalizes the
// reply and stores the result. Only a missing campaign or a storage failure
// is reported as an error.
func (s *AnalysisServiceImpl) Analyze(ctx context.Context, campaignID string) (*models.Analysis, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to retrieve campaign: %w", err)
	}

	kpis := kpi.Calculate(kpi.Counters{
		Impressions: campaign.Impressions,
		Clicks:      campaign.Clicks,
		Conversions: campaign.Conversions,
		Spend:       campaign.Spend,
		Revenue:     campaign.Revenue,
	})

	content := s.generate(ctx, campaign, kpis)

	analysis := &models.Analysis{
		ID:              s.newID(),
		CampaignID:      campaign.ID,
		AnalysisContent: content,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.analysisRepo.Create(ctx, analysis); err != nil {
		slog.Error("Failed to store analysis", "error", err, "campaignID", campaign.ID)
		return nil, fmt.Errorf("failed to store analysis: %w", err)
	}

	s.metrics.Analyses.WithLabelValues(string(content.Source)).Inc()
	slog.Info("Analysis stored", "campaignID", campaign.ID, "analysisID", analysis.ID,
		"source", content.Source, "score", content.OverallScore)
	return analysis, nil
}

// generate never fails: an AI error yields the deterministic fallback content
func (s *AnalysisServiceImpl) generate(ctx context.Context, campaign *models.Campaign, kpis kpi.KPIs) models.AnalysisContent {
	prompt := analyzer.BuildPrompt(campaign, kpis)

	start := time.Now()
	reply, err := s.completer.Complete(ctx, analyzer.SystemPrompt, prompt)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		s.metrics.AILatency.WithLabelValues("error").Observe(elapsed)
		slog.Error("AI analysis failed", "error", err, "campaignID", campaign.ID)
		return analyzer.Fallback(kpis)
	}

	s.metrics.AILatency.WithLabelValues("ok").Observe(elapsed)
	parsed := analyzer.ParseReply(reply)
	if parsed.Kind == analyzer.Unstructured {
		slog.Warn("AI reply is not a well-formed analysis, summarizing locally", "campaignID", campaign.ID)
	}
	return analyzer.Normalize(parsed, kpis)
}

// ListForCampaign retrieves the analyses of a campaign
func (s *AnalysisServiceImpl) ListForCampaign(ctx context.Context, campaignID string, limit int) ([]*models.Analysis, error) {
	return s.analysisRepo.FindByCampaignID(ctx, campaignID, limit)
}

// BulkAnalyze analyzes every campaign lacking an analysis within
// FreshnessWindow. A failure on one campaign is logged and skipped.
func (s *AnalysisServiceImpl) BulkAnalyze(ctx context.Context) ([]*models.Analysis, error) {
	campaigns, err := s.campaignRepo.FindAll(ctx, bulkScanLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	created := []*models.Analysis{}
	for _, campaign := range campaigns {
		if err := ctx.Err(); err != nil {
			slog.Warn("Bulk analysis interrupted", "error", err, "created", len(created))
			break
		}

		analysis, err := s.analyzeIfStale(ctx, campaign.ID)
		if err != nil {
			slog.Error("Failed to analyze campaign", "error", err, "campaignID", campaign.ID)
			continue
		}
		if analysis != nil {
			created = append(created, analysis)
		}
	}

	slog.Info("Bulk analysis finished", "scanned", len(campaigns), "created", len(created))
	return created, nil
}

// analyzeIfStale returns a nil analysis when the campaign was skipped
func (s *AnalysisServiceImpl) analyzeIfStale(ctx context.Context, campaignID string) (*models.Analysis, error) {
	release, ok, err := s.locker.TryLock(ctx, "analyze:"+campaignID, bulkLockTTL)
	if err != nil {
		// Proceed without the lock rather than stall the batch
		slog.Warn("Bulk analysis lock unavailable", "error", err, "campaignID", campaignID)
	} else if !ok {
		slog.Info("Campaign is being analyzed elsewhere, skipping", "campaignID", campaignID)
		return nil, nil
	}
	defer release()

	fresh, err := s.analysisRepo.ExistsSince(ctx, campaignID, s.now().UTC().Add(-FreshnessWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to check recent analyses: %w", err)
	}
	if fresh {
		return nil, nil
	}

	return s.Analyze(ctx, campaignID)
}
