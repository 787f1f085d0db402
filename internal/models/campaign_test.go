package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int64) *int64       { return &n }
func floatPtr(f float64) *float64 { return &f }

func validInput() CampaignInput {
	return CampaignInput{
		Name:           "Summer Sale",
		Platform:       "Google Ads",
		Impressions:    intPtr(10000),
		Clicks:         intPtr(250),
		Conversions:    intPtr(15),
		Spend:          floatPtr(500),
		Revenue:        floatPtr(1200),
		TargetAudience: "Small business owners",
		AdCopy:         "Save 30% this summer",
	}
}

func TestCampaignInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CampaignInput)
		wantErr []string
	}{
		{name: "valid", mutate: func(*CampaignInput) {}},
		{name: "zero counters are fine", mutate: func(in *CampaignInput) {
			in.Impressions, in.Clicks, in.Conversions = intPtr(0), intPtr(0), intPtr(0)
			in.Spend, in.Revenue = floatPtr(0), floatPtr(0)
		}},
		{name: "blank name", mutate: func(in *CampaignInput) { in.Name = "  " },
			wantErr: []string{"campaign_name is required"}},
		{name: "several problems", mutate: func(in *CampaignInput) {
			in.Platform = ""
			in.AdCopy = ""
			in.Spend = floatPtr(-1)
		}, wantErr: []string{"platform is required", "ad_copy is required", "spend must not be negative"}},
		{name: "omitted counters", mutate: func(in *CampaignInput) {
			in.Impressions, in.Clicks, in.Conversions, in.Spend, in.Revenue = nil, nil, nil, nil, nil
		}, wantErr: []string{
			"impressions is required", "clicks is required", "conversions is required",
			"spend is required", "revenue is required",
		}},
		{name: "infinite amount", mutate: func(in *CampaignInput) { in.Revenue = floatPtr(math.Inf(1)) },
			wantErr: []string{"revenue must be a finite number"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := in.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, msg := range tt.wantErr {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestCampaignInput_Campaign(t *testing.T) {
	kw := "sale, summer"
	in := validInput()
	in.Name = " Summer Sale "
	in.Keywords = &kw
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	c := in.Campaign("abc", at)

	assert.Equal(t, "abc", c.ID)
	assert.Equal(t, at, c.CreatedAt)
	assert.Equal(t, " Summer Sale ", c.Name)
	assert.Equal(t, int64(250), c.Clicks)
	assert.Equal(t, 1200.0, c.Revenue)
	assert.Equal(t, &kw, c.Keywords)
}

func TestCampaignInput_CampaignBlankKeywords(t *testing.T) {
	for _, kw := range []string{"", "   "} {
		in := validInput()
		in.Keywords = &kw

		assert.Nil(t, in.Campaign("abc", time.Now()).Keywords, "keywords %q", kw)
	}
}
