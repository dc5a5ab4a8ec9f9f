package services

import (
	"context"
	"io"
	"time"

	"delivery-finance/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodResolverInterface maps a (year, month) pair to its dining and fiscal boundaries
type PeriodResolverInterface interface {
	Resolve(year, month int) (models.Boundaries, error)
}

// FinanceAggregatorInterface sums a price column over an inclusive date window
type FinanceAggregatorInterface interface {
	Sum(table *models.DeliveryTable, dateColumn, priceColumn string, window models.Window) (decimal.Decimal, error)
	SumText(table *models.DeliveryTable, dateColumn, priceColumn, begin, end string) (decimal.Decimal, error)
}

// DeliveryTableLoaderInterface parses an uploaded delivery export
type DeliveryTableLoaderInterface interface {
	Load(r io.Reader, filename string) (*models.DeliveryTable, error)
}

// ReportServiceInterface builds dining vs fiscal reconciliation reports
type ReportServiceInterface interface {
	LoadTable(r io.Reader, filename string) (*models.DeliveryTable, error)
	GenerateReport(ctx context.Context, table *models.DeliveryTable, periods []models.PeriodRequest) ([]models.PeriodResult, error)
	ResolveBoundaries(year, month int) (models.Boundaries, error)
}

// MetricsRecorderInterface records report metrics
type MetricsRecorderInterface interface {
	RecordTableLoaded(format string, rows, invalidDates, missingPrices int)
	RecordReport(status string, periods int, duration time.Duration)
}

// ReportLoggerInterface writes structured report lifecycle events
type ReportLoggerInterface interface {
	LogReportStarted(ctx context.Context, reportID uuid.UUID, periods, rows int)
	LogReportCompleted(ctx context.Context, reportID uuid.UUID, periods int, durationMs int64)
	LogReportFailed(ctx context.Context, reportID uuid.UUID, status, errorMsg string, durationMs int64)
	LogPeriodReconciled(ctx context.Context, reportID uuid.UUID, period, dining, fiscal string)
}

// SampleExportGeneratorInterface produces synthetic delivery exports for local testing
type SampleExportGeneratorInterface interface {
	Generate(opts models.SampleExportOptions) ([]byte, error)
}
