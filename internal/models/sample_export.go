package models

import "time"

// SampleExportOptions describe a synthetic delivery export
type SampleExportOptions struct {
	Format string
	From   time.Time
	To     time.Time
	Rows   int
	// DirtyRatio is the share of rows given an unparseable date or price
	DirtyRatio float64
	// Seed makes the output reproducible; zero picks a random seed
	Seed uint64
}
