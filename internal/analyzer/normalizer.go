package analyzer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ArowuTest/adspendwise-backend/internal/kpi"
	"github.com/ArowuTest/adspendwise-backend/internal/models"
)

// rawExcerptLimit caps how much of an unparseable reply is kept, in characters
const rawExcerptLimit = 200

// ReplyKind tags the two shapes an AI reply can take
type ReplyKind int

const (
	// Unstructured replies carry only raw text
	Unstructured ReplyKind = iota
	// Structured replies decoded into the full analysis schema
	Structured
)

// StructuredFields is the analysis object the model is asked to return
type StructuredFields struct {
	PerformanceAnalysis   string `json:"performance_analysis"`
	BudgetRecommendations string `json:"budget_recommendations"`
	TargetingSuggestions  string `json:"targeting_suggestions"`
	CopyOptimization      string `json:"copy_optimization"`
	ROIStrategies         string `json:"roi_strategies"`
	OverallScore          int    `json:"overall_score"`
}

// Reply is the parsed AI reply. Fields is set only for Structured replies.
type Reply struct {
	Kind   ReplyKind
	Fields StructuredFields
	Raw    string
}

// wireReply uses pointers so missing keys can be told apart from zero values
type wireReply struct {
	PerformanceAnalysis   *string      `json:"performance_analysis"`
	BudgetRecommendations *string      `json:"budget_recommendations"`
	TargetingSuggestions  *string      `json:"targeting_suggestions"`
	CopyOptimization      *string      `json:"copy_optimization"`
	ROIStrategies         *string      `json:"roi_strategies"`
	OverallScore          *json.Number `json:"overall_score"`
}

// ParseReply strictly decodes raw as the analysis schema. Anything that is not
// a JSON object carrying all five narratives and an integer score is reported
// as Unstructured.
func ParseReply(raw string) Reply {
	unstructured := Reply{Kind: Unstructured, Raw: raw}

	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var w wireReply
	if err := dec.Decode(&w); err != nil {
		return unstructured
	}
	// Anything after the object, even a stray closing brace, is invalid JSON
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return unstructured
	}

	if w.PerformanceAnalysis == nil || w.BudgetRecommendations == nil ||
		w.TargetingSuggestions == nil || w.CopyOptimization == nil ||
		w.ROIStrategies == nil || w.OverallScore == nil {
		return unstructured
	}

	score, err := w.OverallScore.Int64()
	if err != nil {
		return unstructured
	}

	return Reply{
		Kind: Structured,
		Raw:  raw,
		Fields: StructuredFields{
			PerformanceAnalysis:   *w.PerformanceAnalysis,
			BudgetRecommendations: *w.BudgetRecommendations,
			TargetingSuggestions:  *w.TargetingSuggestions,
			CopyOptimization:      *w.CopyOptimization,
			ROIStrategies:         *w.ROIStrategies,
			OverallScore:          int(clampInt64(score)),
		},
	}
}

// Normalize turns any parsed reply into storable analysis content
func Normalize(r Reply, k kpi.KPIs) models.AnalysisContent {
	if r.Kind == Structured {
		f := r.Fields
		return models.AnalysisContent{
			PerformanceAnalysis:   f.PerformanceAnalysis,
			BudgetRecommendations: f.BudgetRecommendations,
			TargetingSuggestions:  f.TargetingSuggestions,
			CopyOptimization:      f.CopyOptimization,
			ROIStrategies:         f.ROIStrategies,
			OverallScore:          kpi.ClampScore(f.OverallScore),
			Source:                models.SourceStructured,
		}
	}

	return models.AnalysisContent{
		PerformanceAnalysis: fmt.Sprintf("Campaign shows %.1f%% CTR and %.1f%% ROI. ", k.CTR, k.ROI) +
			excerpt(r.Raw, rawExcerptLimit),
		BudgetRecommendations: "Increase budget on high-performing segments based on current data.",
		TargetingSuggestions:  "Refine audience targeting based on conversion data.",
		CopyOptimization:      "Test new ad variations with stronger calls-to-action.",
		ROIStrategies:         "Focus on conversion optimization and cost reduction.",
		OverallScore:          kpi.Score(k.ROI),
		Source:                models.SourceUnstructured,
	}
}

// Fallback synthesizes analysis content when the AI service could not be reached
func Fallback(k kpi.KPIs) models.AnalysisContent {
	return models.AnalysisContent{
		PerformanceAnalysis: fmt.Sprintf("Campaign performance: %.1f%% CTR, %.1f%% conversion rate, %.1f%% ROI",
			k.CTR, k.ConversionRate, k.ROI),
		BudgetRecommendations: "Optimize budget allocation based on performance data",
		TargetingSuggestions:  "Refine targeting for better audience reach",
		CopyOptimization:      "Test new ad copy variations",
		ROIStrategies:         "Focus on high-converting segments",
		OverallScore:          kpi.Score(k.ROI),
		Source:                models.SourceFallback,
	}
}

func excerpt(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func clampInt64(n int64) int64 {
	if n < kpi.MinScore {
		return kpi.MinScore
	}
	if n > kpi.MaxScore {
		return kpi.MaxScore
	}
	return n
}
