package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Column names the delivery export must carry
const (
	DeliveryDateColumn = "Delivery date"
	PriceColumn        = "Price"
)

// NullDate is a calendar day that may be missing
type NullDate struct {
	Time  time.Time
	Valid bool
}

// NewNullDate truncates t to midnight UTC of its calendar day
func NewNullDate(t time.Time) NullDate {
	return NullDate{
		Time:  time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		Valid: true,
	}
}

// DeliveryTable is a normalized delivery export. It is built once per request
// and is read-only afterwards, so it can be shared between goroutines.
type DeliveryTable struct {
	SourceFormat  string
	RowCount      int
	Dates         map[string][]NullDate
	Amounts       map[string][]decimal.NullDecimal
	InvalidDates  int
	MissingPrices int
}

// NewDeliveryTable builds a table from already normalized delivery date and price columns
func NewDeliveryTable(dates []NullDate, prices []decimal.NullDecimal) *DeliveryTable {
	table := &DeliveryTable{
		RowCount: len(dates),
		Dates:    map[string][]NullDate{DeliveryDateColumn: dates},
		Amounts:  map[string][]decimal.NullDecimal{PriceColumn: prices},
	}
	for _, d := range dates {
		if !d.Valid {
			table.InvalidDates++
		}
	}
	for _, p := range prices {
		if !p.Valid {
			table.MissingPrices++
		}
	}
	return table
}
