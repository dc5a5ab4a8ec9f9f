package services

import (
	"fmt"

	"delivery-finance/internal/models"

	"github.com/shopspring/decimal"
)

type financeAggregator struct{}

func NewFinanceAggregator() FinanceAggregatorInterface {
	return &financeAggregator{}
}

// Sum adds up priceColumn over the rows whose dateColumn falls inside window.
// Rows without a usable price count as zero; the result is not rounded.
func (a *financeAggregator) Sum(table *models.DeliveryTable, dateColumn, priceColumn string, window models.Window) (decimal.Decimal, error) {
	if table == nil {
		return decimal.Zero, fmt.Errorf("%w: delivery table is nil", ErrInvalidArgument)
	}

	dates, ok := table.Dates[dateColumn]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: date column %q not found", ErrInvalidArgument, dateColumn)
	}
	prices, ok := table.Amounts[priceColumn]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: price column %q not found", ErrInvalidArgument, priceColumn)
	}
	if len(dates) != len(prices) {
		return decimal.Zero, fmt.Errorf("column length mismatch: %q has %d rows, %q has %d",
			dateColumn, len(dates), priceColumn, len(prices))
	}

	total := decimal.Zero
	for i, date := range dates {
		if !window.Contains(date) || !prices[i].Valid {
			continue
		}
		total = total.Add(prices[i].Decimal)
	}

	return total, nil
}

// SumText is Sum with "M/D/YYYY" boundaries
func (a *financeAggregator) SumText(table *models.DeliveryTable, dateColumn, priceColumn, begin, end string) (decimal.Decimal, error) {
	window, err := models.ParseWindow(begin, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return a.Sum(table, dateColumn, priceColumn, window)
}
