package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ArowuTest/adspendwise-backend/internal/models"
	"github.com/shopspring/decimal"
)

// RequiredColumns lists the CSV columns every campaign upload must carry
var RequiredColumns = []string{
	"campaign_name",
	"platform",
	"impressions",
	"clicks",
	"conversions",
	"spend",
	"revenue",
	"target_audience",
	"ad_copy",
}

const keywordsColumn = "keywords"

// columnAliases lists alternative header names accepted for a column
var columnAliases = map[string][]string{
	"campaign_name": {"campaign_name", "name"},
}

// MissingColumnsError reports required columns absent from the header row
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	quoted := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		quoted[i] = "'" + c + "'"
	}
	return "Missing required columns: [" + strings.Join(quoted, ", ") + "]"
}

// RowError reports a data row that could not be turned into a campaign.
// Row is 1-based and does not count the header.
type RowError struct {
	Row    int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d, column %s: %v", e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// ParseCampaigns reads a campaign CSV with a header row. The first bad row
// aborts the whole parse so callers never store a partial batch.
func ParseCampaigns(r io.Reader) ([]models.CampaignInput, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("CSV file is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	// Map column indices
	idx := make(map[string]int, len(RequiredColumns)+1)
	var missing []string
	for _, col := range RequiredColumns {
		names := columnAliases[col]
		if names == nil {
			names = []string{col}
		}
		i := findColumnIndex(header, names)
		if i == -1 {
			missing = append(missing, col)
			continue
		}
		idx[col] = i
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}
	keywordsIdx := findColumnIndex(header, []string{keywordsColumn})

	inputs := []models.CampaignInput{}
	for rowNum := 1; ; rowNum++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &RowError{Row: rowNum, Err: err}
		}

		in, err := parseRow(row, idx, keywordsIdx)
		if err != nil {
			var rowErr *RowError
			if errors.As(err, &rowErr) {
				rowErr.Row = rowNum
				return nil, rowErr
			}
			return nil, &RowError{Row: rowNum, Err: err}
		}
		if err := in.Validate(); err != nil {
			return nil, &RowError{Row: rowNum, Err: err}
		}

		inputs = append(inputs, in)
	}

	return inputs, nil
}

// parseRow keeps text cells exactly as written so an imported campaign
// matches one submitted through the API. Only numeric cells are trimmed.
func parseRow(row []string, idx map[string]int, keywordsIdx int) (models.CampaignInput, error) {
	in := models.CampaignInput{
		Name:           row[idx["campaign_name"]],
		Platform:       row[idx["platform"]],
		TargetAudience: row[idx["target_audience"]],
		AdCopy:         row[idx["ad_copy"]],
	}

	number := func(col string) string { return strings.TrimSpace(row[idx[col]]) }

	integers := []struct {
		col string
		dst **int64
	}{
		{"impressions", &in.Impressions},
		{"clicks", &in.Clicks},
		{"conversions", &in.Conversions},
	}
	for _, f := range integers {
		n, err := parseInteger(number(f.col))
		if err != nil {
			return in, &RowError{Column: f.col, Err: err}
		}
		*f.dst = &n
	}

	decimals := []struct {
		col string
		dst **float64
	}{
		{"spend", &in.Spend},
		{"revenue", &in.Revenue},
	}
	for _, f := range decimals {
		v, err := parseDecimal(number(f.col))
		if err != nil {
			return in, &RowError{Column: f.col, Err: err}
		}
		*f.dst = &v
	}

	if keywordsIdx != -1 {
		kw := row[keywordsIdx]
		in.Keywords = &kw
	}

	return in, nil
}

var (
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// parseInteger accepts plain integers and integral decimals such as "250.0"
func parseInteger(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("invalid integer %q: has a fractional part", s)
	}
	if d.LessThan(minInt64) || d.GreaterThan(maxInt64) {
		return 0, fmt.Errorf("invalid integer %q: out of range", s)
	}
	return d.IntPart(), nil
}

func parseDecimal(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal %q", s)
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("invalid decimal %q: out of range", s)
	}
	return f, nil
}

// findColumnIndex finds the index of a column by possible names
func findColumnIndex(header []string, possibleNames []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, name := range possibleNames {
			if strings.ToLower(name) == h {
				return i
			}
		}
	}
	return -1
}
