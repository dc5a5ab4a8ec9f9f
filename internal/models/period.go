package models

import (
	"fmt"
	"time"
)

// BoundaryDateLayout is the textual month/day/year form used for every
// boundary date the resolver hands out.
const BoundaryDateLayout = "01/02/2006"

// PeriodRequest is one (year, month) pair requested by the caller.
// Duplicates are allowed and are reported independently.
type PeriodRequest struct {
	Year  int `json:"year" validate:"calendar_year"`
	Month int `json:"month" validate:"calendar_month"`
}

// Label renders the period as "M/YYYY", e.g. "7/2024"
func (p PeriodRequest) Label() string {
	return fmt.Sprintf("%d/%d", p.Month, p.Year)
}

// Window is a closed date interval; both ends are included.
type Window struct {
	Begin time.Time
	End   time.Time
}

// Contains reports whether date falls inside the window.
// An invalid date never matches any window.
func (w Window) Contains(date NullDate) bool {
	if !date.Valid {
		return false
	}
	return !date.Time.Before(w.Begin) && !date.Time.After(w.End)
}

// ParseWindow builds a window from two "M/D/YYYY" boundary strings
func ParseWindow(begin, end string) (Window, error) {
	b, err := ParseBoundaryDate(begin)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseBoundaryDate(end)
	if err != nil {
		return Window{}, err
	}
	return Window{Begin: b, End: e}, nil
}

// ParseBoundaryDate accepts both zero-padded and unpadded month/day/year text
func ParseBoundaryDate(value string) (time.Time, error) {
	t, err := time.Parse("1/2/2006", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid boundary date %q: %w", value, err)
	}
	return t, nil
}

// Boundaries are the four dates derived for one period.
type Boundaries struct {
	DiningBegin time.Time
	DiningEnd   time.Time
	FiscalBegin time.Time
	FiscalEnd   time.Time
}

func (b Boundaries) Dining() Window {
	return Window{Begin: b.DiningBegin, End: b.DiningEnd}
}

func (b Boundaries) Fiscal() Window {
	return Window{Begin: b.FiscalBegin, End: b.FiscalEnd}
}

// FormattedBoundaries is the textual form of Boundaries
type FormattedBoundaries struct {
	DiningBegin string `json:"dining_begin"`
	DiningEnd   string `json:"dining_end"`
	FiscalBegin string `json:"fiscal_begin"`
	FiscalEnd   string `json:"fiscal_end"`
}

func (b Boundaries) Formatted() FormattedBoundaries {
	return FormattedBoundaries{
		DiningBegin: b.DiningBegin.Format(BoundaryDateLayout),
		DiningEnd:   b.DiningEnd.Format(BoundaryDateLayout),
		FiscalBegin: b.FiscalBegin.Format(BoundaryDateLayout),
		FiscalEnd:   b.FiscalEnd.Format(BoundaryDateLayout),
	}
}
