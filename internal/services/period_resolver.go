package services

import (
	"fmt"
	"time"

	"delivery-finance/internal/models"
	"delivery-finance/internal/validation"
)

// boundaryOverride replaces the computed dining begin for a single period
type boundaryOverride struct {
	diningBeginIsFiscalBegin bool
}

type periodKey struct {
	year  int
	month time.Month
}

// diningOverrides lists calendar cutovers that the general dining rule cannot derive.
// July 2024 started the dining calendar on the 1st instead of the Monday after June's last Sunday.
var diningOverrides = map[periodKey]boundaryOverride{
	{year: 2024, month: time.July}: {diningBeginIsFiscalBegin: true},
}

type periodResolver struct {
	overrides map[periodKey]boundaryOverride
}

func NewPeriodResolver() PeriodResolverInterface {
	return &periodResolver{overrides: diningOverrides}
}

// Resolve maps a (year, month) pair to its dining and fiscal boundaries.
//
// Fiscal runs from the 1st to the last calendar day of the month. Dining runs
// from the Monday after the previous month's last Sunday through this month's
// last Sunday.
func (r *periodResolver) Resolve(year, month int) (models.Boundaries, error) {
	if month < 1 || month > 12 {
		return models.Boundaries{}, fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidArgument, month)
	}
	// the previous December must still be representable for January
	if year < validation.MinCalendarYear || year > validation.MaxCalendarYear {
		return models.Boundaries{}, fmt.Errorf("%w: year %d out of range %d-%d",
			ErrInvalidArgument, year, validation.MinCalendarYear, validation.MaxCalendarYear)
	}

	m := time.Month(month)
	fiscalBegin := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	fiscalEnd := time.Date(year, m, DaysInMonth(year, m), 0, 0, 0, 0, time.UTC)

	var diningBegin time.Time
	override, overridden := r.overrides[periodKey{year: year, month: m}]
	switch {
	case overridden && override.diningBeginIsFiscalBegin:
		diningBegin = fiscalBegin
	case m == time.January:
		diningBegin = LastSunday(year-1, time.December).AddDate(0, 0, 1)
	default:
		diningBegin = LastSunday(year, m-1).AddDate(0, 0, 1)
	}

	return models.Boundaries{
		DiningBegin: diningBegin,
		DiningEnd:   LastSunday(year, m),
		FiscalBegin: fiscalBegin,
		FiscalEnd:   fiscalEnd,
	}, nil
}

// LastSunday returns the last Sunday on or before the last day of the month.
// It steps back from the 1st of the following month, so December rolls into
// January of the next year.
func LastSunday(year int, month time.Month) time.Time {
	next := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	// Monday-based weekday: Monday=0 ... Sunday=6
	mondayBased := (int(next.Weekday()) + 6) % 7
	return next.AddDate(0, 0, -(mondayBased + 1))
}

// DaysInMonth returns the number of days in month, counting Feb 29 in Gregorian leap years
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
