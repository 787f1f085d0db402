package models

import "time"

// AnalysisSource records which normalization path produced an analysis
type AnalysisSource string

const (
	// SourceStructured means the AI reply was a well-formed analysis object
	SourceStructured AnalysisSource = "structured"
	// SourceUnstructured means the reply was free text and was summarized locally
	SourceUnstructured AnalysisSource = "unstructured"
	// SourceFallback means the AI call failed and the analysis is synthetic
	SourceFallback AnalysisSource = "fallback"
)

// AnalysisContent is the narrative and score produced for a campaign
type AnalysisContent struct {
	PerformanceAnalysis   string         `bson:"performance_analysis" json:"performance_analysis"`
	BudgetRecommendations string         `bson:"budget_recommendations" json:"budget_recommendations"`
	TargetingSuggestions  string         `bson:"targeting_suggestions" json:"targeting_suggestions"`
	CopyOptimization      string         `bson:"copy_optimization" json:"copy_optimization"`
	ROIStrategies         string         `bson:"roi_strategies" json:"roi_strategies"`
	OverallScore          int            `bson:"overall_score" json:"overall_score"` // 1-100
	Source                AnalysisSource `bson:"source" json:"source"`
}

// Analysis represents a stored AI analysis of a campaign
type Analysis struct {
	ID              string `bson:"_id" json:"id"`
	CampaignID      string `bson:"campaign_id" json:"campaign_id"`
	AnalysisContent `bson:",inline"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
