package kpi

import "math"

const (
	// MinScore and MaxScore bound every overall score stored on an analysis.
	MinScore = 1
	MaxScore = 100
)

// Counters holds the raw campaign counters KPIs are derived from
type Counters struct {
	Impressions int64
	Clicks      int64
	Conversions int64
	Spend       float64
	Revenue     float64
}

// KPIs holds the derived performance indicators of a campaign
type KPIs struct {
	CTR            float64 // percent
	ConversionRate float64 // percent
	CPA            float64
	ROAS           float64
	ROI            float64 // percent
}

// Calculate derives KPIs from raw counters. Zero denominators never fail:
// each ratio degrades to its documented default instead.
func Calculate(c Counters) KPIs {
	var k KPIs

	if c.Impressions > 0 {
		k.CTR = float64(c.Clicks) / float64(c.Impressions) * 100
	}
	if c.Clicks > 0 {
		k.ConversionRate = float64(c.Conversions) / float64(c.Clicks) * 100
	}

	// Without conversions the whole spend is the cost of acquisition.
	k.CPA = c.Spend
	if c.Conversions > 0 {
		k.CPA = c.Spend / float64(c.Conversions)
	}

	if c.Spend > 0 {
		k.ROAS = c.Revenue / c.Spend
		k.ROI = (c.Revenue - c.Spend) / c.Spend * 100
	}

	return k
}

// AggregateROI applies the ROI formula to summed spend and revenue.
func AggregateROI(totalSpend, totalRevenue float64) float64 {
	return Calculate(Counters{Spend: totalSpend, Revenue: totalRevenue}).ROI
}

// Score maps an ROI percentage onto the [MinScore, MaxScore] range.
func Score(roi float64) int {
	if math.IsNaN(roi) {
		return ClampScore(50)
	}
	shifted := math.Round(roi) + 50
	if shifted > MaxScore {
		return MaxScore
	}
	if shifted < MinScore {
		return MinScore
	}
	return int(shifted)
}

// ClampScore forces an arbitrary score into [MinScore, MaxScore].
func ClampScore(score int) int {
	switch {
	case score < MinScore:
		return MinScore
	case score > MaxScore:
		return MaxScore
	default:
		return score
	}
}
