package models

// DashboardSummary aggregates campaigns and analyses for the dashboard
type DashboardSummary struct {
	TotalCampaigns int64   `json:"total_campaigns"`
	TotalSpend     float64 `json:"total_spend"`
	TotalRevenue   float64 `json:"total_revenue"`
	AvgROI         float64 `json:"avg_roi"`
	TotalAnalyses  int64   `json:"total_analyses"`
	AvgScore       float64 `json:"avg_score"`
}
