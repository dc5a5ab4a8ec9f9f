package dto

import (
	"delivery-finance/internal/models"
)

// Report Response DTOs

// PeriodReportRecord is one row of the dining vs fiscal report. The field
// names are the column headings the frontend renders.
type PeriodReportRecord struct {
	MonthYear           string  `json:"Month / Year"`
	DiningFinances      float64 `json:"Dining Finances"`
	FiscalFinances      float64 `json:"Fiscal Finances"`
	AbsoluteDifferences float64 `json:"Absolute Differences"`
}

// BoundariesResponse represents the resolved windows for a single period
type BoundariesResponse struct {
	Period string `json:"period"`
	models.FormattedBoundaries
}

// BoundariesQuery represents the query parameters of the boundaries lookup
type BoundariesQuery struct {
	Year  int `query:"year" json:"year" validate:"calendar_year"`
	Month int `query:"month" json:"month" validate:"calendar_month"`
}

// NewPeriodReport converts reconciled periods into response records, keeping
// their order. Amounts are already rounded to cents.
func NewPeriodReport(results []models.PeriodResult) []PeriodReportRecord {
	records := make([]PeriodReportRecord, 0, len(results))
	for _, r := range results {
		records = append(records, PeriodReportRecord{
			MonthYear:           r.Label(),
			DiningFinances:      r.Dining.InexactFloat64(),
			FiscalFinances:      r.Fiscal.InexactFloat64(),
			AbsoluteDifferences: r.AbsoluteDifference.InexactFloat64(),
		})
	}
	return records
}

// NewBoundariesResponse converts resolved boundaries into their text form
func NewBoundariesResponse(period models.PeriodRequest, b models.Boundaries) BoundariesResponse {
	return BoundariesResponse{
		Period:              period.Label(),
		FormattedBoundaries: b.Formatted(),
	}
}
