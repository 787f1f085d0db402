package analyzer

import (
	"fmt"
	"strings"

	"github.com/ArowuTest/adspendwise-backend/internal/kpi"
	"github.com/ArowuTest/adspendwise-backend/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SystemPrompt is sent as the system message of every analysis request
const SystemPrompt = `You are AdSpendWise AI, an expert ad campaign optimizer for startups.

Analyze ad campaign data and provide actionable insights including:
1. Performance analysis with key metrics
2. Budget allocation recommendations
3. Audience targeting suggestions
4. Ad copy optimization recommendations
5. ROI improvement strategies

Be specific, data-driven, and focus on practical advice for startup founders.`

const keywordsPlaceholder = "Not provided"

const replyFormat = `Please provide analysis in exactly this JSON format:
{
    "performance_analysis": "Detailed analysis of current performance with key insights",
    "budget_recommendations": "Specific budget allocation and spending recommendations",
    "targeting_suggestions": "Audience targeting improvements and new segments to try",
    "copy_optimization": "Ad copy improvements and A/B testing suggestions",
    "roi_strategies": "Specific strategies to improve ROI and overall performance",
    "overall_score": score_from_1_to_100
}
The overall_score must be an integer between 1 and 100 inclusive.`

// BuildPrompt renders the user prompt describing a campaign and its KPIs
func BuildPrompt(c *models.Campaign, k kpi.KPIs) string {
	// Grouped thousands for raw counters and currency amounts.
	p := message.NewPrinter(language.English)

	keywords := keywordsPlaceholder
	if c.Keywords != nil && strings.TrimSpace(*c.Keywords) != "" {
		keywords = *c.Keywords
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this ad campaign data for %s on %s:\n\n", c.Name, c.Platform)

	b.WriteString("CAMPAIGN METRICS:\n")
	b.WriteString(p.Sprintf("- Impressions: %d\n", c.Impressions))
	b.WriteString(p.Sprintf("- Clicks: %d\n", c.Clicks))
	b.WriteString(p.Sprintf("- Conversions: %d\n", c.Conversions))
	b.WriteString(p.Sprintf("- Spend: $%.2f\n", c.Spend))
	b.WriteString(p.Sprintf("- Revenue: $%.2f\n", c.Revenue))
	fmt.Fprintf(&b, "- CTR: %.2f%%\n", k.CTR)
	fmt.Fprintf(&b, "- Conversion Rate: %.2f%%\n", k.ConversionRate)
	fmt.Fprintf(&b, "- CPA: $%.2f\n", k.CPA)
	fmt.Fprintf(&b, "- ROAS: %.2fx\n", k.ROAS)
	fmt.Fprintf(&b, "- ROI: %.2f%%\n\n", k.ROI)

	b.WriteString("CAMPAIGN DETAILS:\n")
	fmt.Fprintf(&b, "- Target Audience: %s\n", c.TargetAudience)
	fmt.Fprintf(&b, "- Ad Copy: %s\n", c.AdCopy)
	fmt.Fprintf(&b, "- Keywords: %s\n\n", keywords)

	b.WriteString(replyFormat)
	return b.String()
}
