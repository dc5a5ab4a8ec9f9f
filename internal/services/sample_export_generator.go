package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"delivery-finance/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/xuri/excelize/v2"
)

const (
	maxSampleRows      = 5000
	defaultSampleRows  = 100
	sampleDateLayout   = "2006-01-02"
	sampleBannerFormat = "Deliveries export generated %s"
)

type sampleExportGenerator struct {
	restaurantPool []string
}

// NewSampleExportGenerator creates a generator of synthetic delivery exports
// in the same layout the loader expects: one banner row, then the header.
func NewSampleExportGenerator() SampleExportGeneratorInterface {
	return &sampleExportGenerator{restaurantPool: initializeRestaurantPool()}
}

func initializeRestaurantPool() []string {
	return []string{
		"Chipotle Mexican Grill",
		"Panera Bread",
		"Olive Garden",
		"Five Guys",
		"Panda Express",
		"Shake Shack",
		"Sweetgreen",
		"Cava",
		"Wingstop",
		"Noodles & Company",
	}
}

func (g *sampleExportGenerator) Generate(opts models.SampleExportOptions) ([]byte, error) {
	if opts.Rows <= 0 {
		opts.Rows = defaultSampleRows
	}
	if opts.Rows > maxSampleRows {
		return nil, fmt.Errorf("%w: at most %d rows can be generated", ErrInvalidArgument, maxSampleRows)
	}
	if opts.To.Before(opts.From) {
		return nil, fmt.Errorf("%w: range ends before it starts", ErrInvalidArgument)
	}
	if opts.DirtyRatio < 0 || opts.DirtyRatio > 1 {
		return nil, fmt.Errorf("%w: dirty ratio must be between 0 and 1", ErrInvalidArgument)
	}

	records := g.records(opts)

	switch opts.Format {
	case "", SourceFormatCSV:
		return writeCSV(records)
	case SourceFormatXLSX:
		return writeXLSX(records)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidArgument, opts.Format)
	}
}

func (g *sampleExportGenerator) records(opts models.SampleExportOptions) [][]string {
	faker := gofakeit.New(opts.Seed)

	records := make([][]string, 0, opts.Rows+2)
	records = append(records,
		[]string{fmt.Sprintf(sampleBannerFormat, time.Now().UTC().Format(sampleDateLayout))},
		[]string{"Order", "Restaurant", models.DeliveryDateColumn, models.PriceColumn},
	)

	for i := 0; i < opts.Rows; i++ {
		delivered := faker.DateRange(opts.From, opts.To.Add(24*time.Hour-time.Second))
		date := delivered.Format(sampleDateLayout + " 15:04:05")
		price := fmt.Sprintf("%.2f", faker.Price(4, 180))

		if faker.Float64() < opts.DirtyRatio {
			if faker.Bool() {
				date = faker.RandomString([]string{"", "pending", "TBD"})
			} else {
				price = faker.RandomString([]string{"", "n/a", "refunded"})
			}
		}

		records = append(records, []string{
			faker.UUID(),
			faker.RandomString(g.restaurantPool),
			date,
			price,
		})
	}
	return records
}

func writeCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func writeXLSX(records [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		row := make([]interface{}, len(record))
		for j, v := range record {
			row[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
