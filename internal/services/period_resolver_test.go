package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type PeriodResolverTestSuite struct {
	suite.Suite
	resolver PeriodResolverInterface
}

func TestPeriodResolverSuite(t *testing.T) {
	suite.Run(t, new(PeriodResolverTestSuite))
}

func (s *PeriodResolverTestSuite) SetupTest() {
	s.resolver = NewPeriodResolver()
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *PeriodResolverTestSuite) TestResolve_KnownPeriods() {
	testCases := []struct {
		name        string
		year, month int
		diningBegin time.Time
		diningEnd   time.Time
		fiscalBegin time.Time
		fiscalEnd   time.Time
	}{
		{
			name: "August 2024", year: 2024, month: 8,
			diningBegin: date(2024, time.July, 29), diningEnd: date(2024, time.August, 25),
			fiscalBegin: date(2024, time.August, 1), fiscalEnd: date(2024, time.August, 31),
		},
		{
			name: "leap February 2024", year: 2024, month: 2,
			diningBegin: date(2024, time.January, 29), diningEnd: date(2024, time.February, 25),
			fiscalBegin: date(2024, time.February, 1), fiscalEnd: date(2024, time.February, 29),
		},
		{
			name: "December 2024 ends before the year rolls over", year: 2024, month: 12,
			diningBegin: date(2024, time.November, 25), diningEnd: date(2024, time.December, 29),
			fiscalBegin: date(2024, time.December, 1), fiscalEnd: date(2024, time.December, 31),
		},
		{
			name: "January 2025 starts in the previous December", year: 2025, month: 1,
			diningBegin: date(2024, time.December, 30), diningEnd: date(2025, time.January, 26),
			fiscalBegin: date(2025, time.January, 1), fiscalEnd: date(2025, time.January, 31),
		},
		{
			name: "June 2024 last Sunday is the last day", year: 2024, month: 6,
			diningBegin: date(2024, time.May, 27), diningEnd: date(2024, time.June, 30),
			fiscalBegin: date(2024, time.June, 1), fiscalEnd: date(2024, time.June, 30),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			b, err := s.resolver.Resolve(tc.year, tc.month)
			s.Require().NoError(err)
			s.Equal(tc.diningBegin, b.DiningBegin, "dining begin")
			s.Equal(tc.diningEnd, b.DiningEnd, "dining end")
			s.Equal(tc.fiscalBegin, b.FiscalBegin, "fiscal begin")
			s.Equal(tc.fiscalEnd, b.FiscalEnd, "fiscal end")
		})
	}
}

func (s *PeriodResolverTestSuite) TestResolve_July2024Override() {
	b, err := s.resolver.Resolve(2024, 7)
	s.Require().NoError(err)

	s.Equal(b.FiscalBegin, b.DiningBegin)
	s.Equal(date(2024, time.July, 1), b.DiningBegin)
	s.Equal(date(2024, time.July, 28), b.DiningEnd)
	s.Equal(date(2024, time.July, 31), b.FiscalEnd)
}

func (s *PeriodResolverTestSuite) TestResolve_OverrideOnlyAppliesToJuly2024() {
	for _, year := range []int{2023, 2025} {
		b, err := s.resolver.Resolve(year, 7)
		s.Require().NoError(err)
		s.Equal(LastSunday(year, time.June).AddDate(0, 0, 1), b.DiningBegin, "year %d", year)
		s.Equal(time.Monday, b.DiningBegin.Weekday())
	}
}

func (s *PeriodResolverTestSuite) TestResolve_FiscalEndLeapYears() {
	testCases := []struct {
		year    int
		lastDay int
	}{
		{2024, 29},
		{2023, 28},
		{2000, 29},
		{1900, 28},
		{2100, 28},
		{2400, 29},
	}

	for _, tc := range testCases {
		b, err := s.resolver.Resolve(tc.year, 2)
		s.Require().NoError(err)
		s.Equal(date(tc.year, time.February, tc.lastDay), b.FiscalEnd, "year %d", tc.year)
		s.Equal(time.February, b.FiscalEnd.Month(), "year %d must not spill into March", tc.year)
	}
}

func (s *PeriodResolverTestSuite) TestResolve_DiningWindowsAreContinuous() {
	for year := 2018; year <= 2032; year++ {
		for month := 1; month <= 12; month++ {
			current, err := s.resolver.Resolve(year, month)
			s.Require().NoError(err)

			s.Equal(time.Sunday, current.DiningEnd.Weekday(), "%d/%d dining end", month, year)
			s.Equal(current.FiscalBegin.Month(), current.DiningEnd.Month(), "%d/%d dining end stays in month", month, year)
			s.True(current.DiningEnd.AddDate(0, 0, 7).Month() != current.DiningEnd.Month(), "%d/%d dining end is the last Sunday", month, year)

			nextYear, nextMonth := year, month+1
			if nextMonth == 13 {
				nextYear, nextMonth = year+1, 1
			}
			if nextYear == 2024 && nextMonth == 7 {
				continue
			}

			next, err := s.resolver.Resolve(nextYear, nextMonth)
			s.Require().NoError(err)
			s.Equal(time.Monday, next.DiningBegin.Weekday(), "%d/%d dining begin", nextMonth, nextYear)
			s.Equal(current.DiningEnd.AddDate(0, 0, 1), next.DiningBegin, "%d/%d follows %d/%d", nextMonth, nextYear, month, year)
		}
	}
}

func (s *PeriodResolverTestSuite) TestResolve_JanuaryUsesPreviousDecember() {
	for year := 2000; year <= 2040; year++ {
		b, err := s.resolver.Resolve(year, 1)
		s.Require().NoError(err)
		s.Equal(LastSunday(year-1, time.December).AddDate(0, 0, 1), b.DiningBegin, "year %d", year)
	}
}

func (s *PeriodResolverTestSuite) TestResolve_InvalidArguments() {
	testCases := []struct {
		name        string
		year, month int
	}{
		{"month zero", 2024, 0},
		{"month thirteen", 2024, 13},
		{"negative month", 2024, -1},
		{"year zero", 0, 5},
		{"five digit year", 10000, 5},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.resolver.Resolve(tc.year, tc.month)
			s.ErrorIs(err, ErrInvalidArgument)
		})
	}
}

func (s *PeriodResolverTestSuite) TestResolve_FormattedRoundTrip() {
	b, err := s.resolver.Resolve(2024, 3)
	s.Require().NoError(err)

	f := b.Formatted()
	s.Equal("02/26/2024", f.DiningBegin)
	s.Equal("03/31/2024", f.DiningEnd)
	s.Equal("03/01/2024", f.FiscalBegin)
	s.Equal("03/31/2024", f.FiscalEnd)
}

func (s *PeriodResolverTestSuite) TestDaysInMonth() {
	s.Equal(31, DaysInMonth(2024, time.January))
	s.Equal(30, DaysInMonth(2024, time.April))
	s.Equal(29, DaysInMonth(2024, time.February))
	s.Equal(28, DaysInMonth(2023, time.February))
	s.Equal(31, DaysInMonth(2024, time.December))
}
