package models

import (
	"github.com/shopspring/decimal"
)

// PeriodResult is the reconciliation of one requested period. Amounts are
// rounded to cents by the report service.
type PeriodResult struct {
	Period             PeriodRequest
	Boundaries         Boundaries
	Dining             decimal.Decimal
	Fiscal             decimal.Decimal
	AbsoluteDifference decimal.Decimal
}

// Label is the period label shown in the report ("M/YYYY")
func (r PeriodResult) Label() string {
	return r.Period.Label()
}
