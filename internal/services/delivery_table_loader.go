package services

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"delivery-finance/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SourceFormatCSV  = "csv"
	SourceFormatXLSX = "xlsx"
)

var zipMagic = []byte("PK\x03\x04")

// deliveryDateLayouts are tried in order after the value is cut at its first space
var deliveryDateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"1/2/2006",
	"2006/1/2",
	"2006.1.2",
	"01-02-06",
	"1-2-2006",
	"1/2/06",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Excel serial day numbers for 1900-01-01 and 9999-12-31
const (
	minExcelSerial = 1
	maxExcelSerial = 2958465
)

type deliveryTableLoader struct {
	headerSkipRows int
}

// NewDeliveryTableLoader creates a loader that discards headerSkipRows banner
// rows before reading the header row.
func NewDeliveryTableLoader(headerSkipRows int) DeliveryTableLoaderInterface {
	if headerSkipRows < 0 {
		headerSkipRows = 0
	}
	return &deliveryTableLoader{headerSkipRows: headerSkipRows}
}

// Load parses a CSV or XLSX delivery export and normalizes its
// "Delivery date" and "Price" columns.
func (l *deliveryTableLoader) Load(r io.Reader, filename string) (*models.DeliveryTable, error) {
	br := bufio.NewReader(r)
	format := detectFormat(br, filename)

	var (
		records [][]string
		err     error
	)
	switch format {
	case SourceFormatXLSX:
		records, err = readXLSXRecords(br)
	default:
		records, err = readCSVRecords(br)
	}
	if err != nil {
		return nil, err
	}

	table, err := l.normalize(records, format)
	if err != nil {
		return nil, err
	}
	table.SourceFormat = format

	slog.Debug("delivery table loaded",
		"filename", filename,
		"format", format,
		"rows", table.RowCount,
		"invalid_dates", table.InvalidDates,
		"missing_prices", table.MissingPrices)

	return table, nil
}

func detectFormat(br *bufio.Reader, filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return SourceFormatXLSX
	case ".csv", ".txt":
		return SourceFormatCSV
	}

	if head, err := br.Peek(len(zipMagic)); err == nil && bytes.Equal(head, zipMagic) {
		return SourceFormatXLSX
	}
	return SourceFormatCSV
}

func readCSVRecords(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	// the banner row rarely has as many fields as the table below it
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableTable, err)
	}
	return records, nil
}

func readXLSXRecords(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open excel: %v", ErrUnreadableTable, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("failed to close workbook", "error", closeErr)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrUnreadableTable)
	}

	// raw values keep prices free of currency formatting and dates as serial numbers
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %q: %v", ErrUnreadableTable, sheets[0], err)
	}
	return rows, nil
}

func (l *deliveryTableLoader) normalize(records [][]string, format string) (*models.DeliveryTable, error) {
	if len(records) <= l.headerSkipRows {
		return nil, fmt.Errorf("%w: no header row after skipping %d row(s)", ErrUnreadableTable, l.headerSkipRows)
	}
	records = records[l.headerSkipRows:]

	for len(records) > 0 && isBlankRecord(records[0]) {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row after skipping %d row(s)", ErrUnreadableTable, l.headerSkipRows)
	}

	header := records[0]
	dateIdx, err := columnIndex(header, models.DeliveryDateColumn)
	if err != nil {
		return nil, err
	}
	priceIdx, err := columnIndex(header, models.PriceColumn)
	if err != nil {
		return nil, err
	}

	rows := records[1:]
	dates := make([]models.NullDate, 0, len(rows))
	prices := make([]decimal.NullDecimal, 0, len(rows))
	for _, row := range rows {
		if isBlankRecord(row) {
			continue
		}
		dates = append(dates, parseDeliveryDate(cell(row, dateIdx), format == SourceFormatXLSX))
		prices = append(prices, parsePrice(cell(row, priceIdx)))
	}

	return models.NewDeliveryTable(dates, prices), nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if normalizeHeader(h) == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrMissingColumn, name)
}

func normalizeHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isBlankRecord(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseDeliveryDate keeps only the text before the first space, so
// "2024-07-15 10:32:00" and "2024-07-15 extra" both land on 2024-07-15.
func parseDeliveryDate(value string, allowSerial bool) models.NullDate {
	value = strings.TrimSpace(value)
	if i := strings.IndexByte(value, ' '); i >= 0 {
		value = value[:i]
	}
	if value == "" {
		return models.NullDate{}
	}

	for _, layout := range deliveryDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return models.NewNullDate(t)
		}
	}

	if allowSerial {
		if serial, err := strconv.ParseFloat(value, 64); err == nil && serial >= minExcelSerial && serial <= maxExcelSerial {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return models.NewNullDate(t)
			}
		}
	}

	return models.NullDate{}
}

func parsePrice(value string) decimal.NullDecimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
