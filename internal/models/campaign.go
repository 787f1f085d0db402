package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Campaign represents a stored advertising campaign and its raw counters
type Campaign struct {
	ID             string    `bson:"_id" json:"id"`
	Name           string    `bson:"campaign_name" json:"campaign_name"`
	Platform       string    `bson:"platform" json:"platform"` // Google Ads, Facebook Ads, ...
	Impressions    int64     `bson:"impressions" json:"impressions"`
	Clicks         int64     `bson:"clicks" json:"clicks"`
	Conversions    int64     `bson:"conversions" json:"conversions"`
	Spend          float64   `bson:"spend" json:"spend"`
	Revenue        float64   `bson:"revenue" json:"revenue"`
	TargetAudience string    `bson:"target_audience" json:"target_audience"`
	AdCopy         string    `bson:"ad_copy" json:"ad_copy"`
	Keywords       *string   `bson:"keywords" json:"keywords"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// CampaignInput is the client-supplied part of a Campaign. Counters are
// pointers so an omitted field is told apart from an explicit zero.
type CampaignInput struct {
	Name           string   `json:"campaign_name"`
	Platform       string   `json:"platform"`
	Impressions    *int64   `json:"impressions"`
	Clicks         *int64   `json:"clicks"`
	Conversions    *int64   `json:"conversions"`
	Spend          *float64 `json:"spend"`
	Revenue        *float64 `json:"revenue"`
	TargetAudience string   `json:"target_audience"`
	AdCopy         string   `json:"ad_copy"`
	Keywords       *string  `json:"keywords"`
}

// Validate checks that every required field is present and that counters
// are finite and not negative.
// Every problem found is reported, joined into one error.
func (in CampaignInput) Validate() error {
	var errs []error

	required := []struct {
		field string
		value string
	}{
		{"campaign_name", in.Name},
		{"platform", in.Platform},
		{"target_audience", in.TargetAudience},
		{"ad_copy", in.AdCopy},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.field))
		}
	}

	integers := []struct {
		field string
		value *int64
	}{
		{"impressions", in.Impressions},
		{"clicks", in.Clicks},
		{"conversions", in.Conversions},
	}
	for _, c := range integers {
		switch {
		case c.value == nil:
			errs = append(errs, fmt.Errorf("%s is required", c.field))
		case *c.value < 0:
			errs = append(errs, fmt.Errorf("%s must not be negative", c.field))
		}
	}

	amounts := []struct {
		field string
		value *float64
	}{
		{"spend", in.Spend},
		{"revenue", in.Revenue},
	}
	for _, c := range amounts {
		switch {
		case c.value == nil:
			errs = append(errs, fmt.Errorf("%s is required", c.field))
		case math.IsNaN(*c.value) || math.IsInf(*c.value, 0):
			errs = append(errs, fmt.Errorf("%s must be a finite number", c.field))
		case *c.value < 0:
			errs = append(errs, fmt.Errorf("%s must not be negative", c.field))
		}
	}

	return errors.Join(errs...)
}

// Campaign materializes a validated input into a Campaign with the given
// identity. Text is kept as sent; blank keywords are stored as absent.
func (in CampaignInput) Campaign(id string, createdAt time.Time) *Campaign {
	keywords := in.Keywords
	if keywords != nil && strings.TrimSpace(*keywords) == "" {
		keywords = nil
	}

	return &Campaign{
		ID:             id,
		Name:           in.Name,
		Platform:       in.Platform,
		Impressions:    deref(in.Impressions),
		Clicks:         deref(in.Clicks),
		Conversions:    deref(in.Conversions),
		Spend:          deref(in.Spend),
		Revenue:        deref(in.Revenue),
		TargetAudience: in.TargetAudience,
		AdCopy:         in.AdCopy,
		Keywords:       keywords,
		CreatedAt:      createdAt,
	}
}

func deref[T int64 | float64](p *T) T {
	if p == nil {
		return 0
	}
	return *p
}
