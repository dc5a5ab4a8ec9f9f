package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"delivery-finance/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// centPlaces is the precision of every amount in a report
const centPlaces = 2

type reportService struct {
	loader      DeliveryTableLoaderInterface
	resolver    PeriodResolverInterface
	aggregator  FinanceAggregatorInterface
	metrics     MetricsRecorderInterface
	events      ReportLoggerInterface
	maxPeriods  int
	maxParallel int
}

// ReportOptions bound the work a single request may ask for
type ReportOptions struct {
	MaxPeriods  int
	MaxParallel int
}

func NewReportService(
	loader DeliveryTableLoaderInterface,
	resolver PeriodResolverInterface,
	aggregator FinanceAggregatorInterface,
	metrics MetricsRecorderInterface,
	events ReportLoggerInterface,
	opts ReportOptions,
) ReportServiceInterface {
	if opts.MaxParallel < 1 {
		opts.MaxParallel = 1
	}
	return &reportService{
		loader:      loader,
		resolver:    resolver,
		aggregator:  aggregator,
		metrics:     metrics,
		events:      events,
		maxPeriods:  opts.MaxPeriods,
		maxParallel: opts.MaxParallel,
	}
}

func (s *reportService) LoadTable(r io.Reader, filename string) (*models.DeliveryTable, error) {
	table, err := s.loader.Load(r, filename)
	if err != nil {
		slog.Warn("failed to load delivery table",
			"filename", filename,
			"error", err)
		return nil, err
	}

	s.metrics.RecordTableLoaded(table.SourceFormat, table.RowCount, table.InvalidDates, table.MissingPrices)
	return table, nil
}

func (s *reportService) ResolveBoundaries(year, month int) (models.Boundaries, error) {
	return s.resolver.Resolve(year, month)
}

// GenerateReport reconciles every requested period against the table. The
// result has one entry per request in request order; duplicates are kept.
// A single invalid period rejects the whole batch.
func (s *reportService) GenerateReport(ctx context.Context, table *models.DeliveryTable, periods []models.PeriodRequest) ([]models.PeriodResult, error) {
	start := time.Now()
	reportID := uuid.New()

	if table == nil {
		return nil, fmt.Errorf("%w: delivery table is nil", ErrInvalidArgument)
	}
	if s.maxPeriods > 0 && len(periods) > s.maxPeriods {
		err := fmt.Errorf("%w: %d requested, at most %d allowed", ErrTooManyPeriods, len(periods), s.maxPeriods)
		s.metrics.RecordReport(ReportStatusRejected, len(periods), time.Since(start))
		s.events.LogReportFailed(ctx, reportID, ReportStatusRejected, err.Error(), time.Since(start).Milliseconds())
		return nil, err
	}

	s.events.LogReportStarted(ctx, reportID, len(periods), table.RowCount)
	results := make([]models.PeriodResult, len(periods))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxParallel)
	for i, period := range periods {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := s.reconcile(table, period)
			if err != nil {
				return fmt.Errorf("period %d (%s): %w", i, period.Label(), err)
			}
			s.events.LogPeriodReconciled(gctx, reportID, period.Label(), result.Dining.StringFixed(centPlaces), result.Fiscal.StringFixed(centPlaces))
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		status := ReportStatusFailed
		if errors.Is(err, ErrInvalidArgument) {
			status = ReportStatusRejected
		}
		s.metrics.RecordReport(status, len(periods), time.Since(start))
		s.events.LogReportFailed(ctx, reportID, status, err.Error(), time.Since(start).Milliseconds())
		return nil, err
	}

	s.metrics.RecordReport(ReportStatusSuccess, len(periods), time.Since(start))
	s.events.LogReportCompleted(ctx, reportID, len(periods), time.Since(start).Milliseconds())

	return results, nil
}

func (s *reportService) reconcile(table *models.DeliveryTable, period models.PeriodRequest) (models.PeriodResult, error) {
	boundaries, err := s.resolver.Resolve(period.Year, period.Month)
	if err != nil {
		return models.PeriodResult{}, err
	}

	// sums run on the published text form so a report always matches the
	// boundaries endpoint
	text := boundaries.Formatted()
	dining, err := s.aggregator.SumText(table, models.DeliveryDateColumn, models.PriceColumn, text.DiningBegin, text.DiningEnd)
	if err != nil {
		return models.PeriodResult{}, fmt.Errorf("dining window: %w", err)
	}
	fiscal, err := s.aggregator.SumText(table, models.DeliveryDateColumn, models.PriceColumn, text.FiscalBegin, text.FiscalEnd)
	if err != nil {
		return models.PeriodResult{}, fmt.Errorf("fiscal window: %w", err)
	}

	return models.PeriodResult{
		Period:             period,
		Boundaries:         boundaries,
		Dining:             dining.Round(centPlaces),
		Fiscal:             fiscal.Round(centPlaces),
		AbsoluteDifference: dining.Sub(fiscal).Abs().Round(centPlaces),
	}, nil
}
