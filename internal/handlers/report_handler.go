package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"delivery-finance/internal/dto"
	apierrors "delivery-finance/internal/errors"
	"delivery-finance/internal/models"
	"delivery-finance/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	uploadFileField = "file"
	periodListField = "dates"
)

var (
	errMissingUpload     = errors.New("delivery export file is required")
	errUploadTooLarge    = errors.New("delivery export exceeds the upload limit")
	errInvalidPeriodList = errors.New("invalid period list")
	errUnusableUpload    = errors.New("unusable delivery export")
)

type ReportHandler struct {
	reportService  services.ReportServiceInterface
	maxUploadBytes int64
}

func NewReportHandler(reportService services.ReportServiceInterface, maxUploadBytes int64) *ReportHandler {
	return &ReportHandler{
		reportService:  reportService,
		maxUploadBytes: maxUploadBytes,
	}
}

// ProcessDeliveries reconciles an uploaded delivery export against the
// requested periods and returns the bare report array.
//
// Method: POST /process-deliveries
//
// Form fields:
//   - file: CSV or XLSX export; the first row is a banner, the second the header
//   - dates: JSON list of [year, month] pairs, e.g. [[2024,7],[2024,8]]
//
// Success Response: 200 OK, one object per requested period in request order
//   - Month / Year: "M/YYYY"
//   - Dining Finances: number, 2 decimal places
//   - Fiscal Finances: number, 2 decimal places
//   - Absolute Differences: number, 2 decimal places
//
// Error Responses:
//   - 400: Missing file, malformed period list, invalid period
//   - 413: Upload too large
//   - 422: Unreadable export or missing column
//   - 500: Internal server error
func (h *ReportHandler) ProcessDeliveries(c echo.Context) error {
	_, results, err := h.buildReport(c)
	if err != nil {
		return h.handleReportError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPeriodReport(results))
}

// GenerateDeliveryFinanceReport is the versioned form of ProcessDeliveries.
// It accepts the same form and wraps the report in the standard envelope with
// load statistics in meta.
//
// Method: POST /api/v1/reports/delivery-finances
func (h *ReportHandler) GenerateDeliveryFinanceReport(c echo.Context) error {
	table, results, err := h.buildReport(c)
	if err != nil {
		return h.handleReportError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewPeriodReport(results),
		Meta: map[string]interface{}{
			"periods":        len(results),
			"rows":           table.RowCount,
			"invalid_dates":  table.InvalidDates,
			"missing_prices": table.MissingPrices,
			"source_format":  table.SourceFormat,
		},
	})
}

// GetPeriodBoundaries returns the dining and fiscal windows of one period
//
// Method: GET /api/v1/periods/boundaries
//
// Query parameters:
//   - year: calendar year (required)
//   - month: 1-12 (required)
//
// Success Response: 200 OK
//   - period: "M/YYYY"
//   - dining_begin, dining_end, fiscal_begin, fiscal_end: "MM/DD/YYYY"
//
// Error Responses:
//   - 400: Missing year/month (VALIDATION_002), invalid year/month
//   - 500: Internal server error
func (h *ReportHandler) GetPeriodBoundaries(c echo.Context) error {
	if missing := missingQueryParams(c, "year", "month"); len(missing) > 0 {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails(missing...))
	}

	var query dto.BoundariesQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("year and month must be integers"))
	}
	if err := c.Validate(&query); err != nil {
		return SendValidationError(c, err)
	}

	boundaries, err := h.reportService.ResolveBoundaries(query.Year, query.Month)
	if err != nil {
		if errors.Is(err, services.ErrInvalidArgument) {
			return SendError(c, apierrors.ReportInvalidPeriod, apierrors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	period := models.PeriodRequest{Year: query.Year, Month: query.Month}
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewBoundariesResponse(period, boundaries),
	})
}

// buildReport reads the multipart form, loads the export once and reconciles
// every requested period against it.
func (h *ReportHandler) buildReport(c echo.Context) (*models.DeliveryTable, []models.PeriodResult, error) {
	req := c.Request()
	if h.maxUploadBytes > 0 {
		req.Body = http.MaxBytesReader(c.Response(), req.Body, h.maxUploadBytes)
	}

	fileHeader, err := c.FormFile(uploadFileField)
	if err != nil {
		switch {
		case isBodyTooLarge(err):
			return nil, nil, errUploadTooLarge
		case isMissingUpload(err):
			return nil, nil, errMissingUpload
		default:
			return nil, nil, fmt.Errorf("%w: %v", errMissingUpload, err)
		}
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		return nil, nil, errUploadTooLarge
	}

	periods, err := services.ParsePeriodList(c.FormValue(periodListField))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errInvalidPeriodList, err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	table, err := h.reportService.LoadTable(src, uploadName(fileHeader))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errUnusableUpload, err)
	}

	slog.Debug("delivery export received",
		"trace_id", getTraceID(c),
		"client_ip", getClientIP(c),
		"filename", fileHeader.Filename,
		"bytes", fileHeader.Size,
		"periods", len(periods))

	ctx := services.WithTraceID(req.Context(), getTraceID(c))
	results, err := h.reportService.GenerateReport(ctx, table, periods)
	if err != nil {
		return nil, nil, err
	}

	return table, results, nil
}

func (h *ReportHandler) handleReportError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errUploadTooLarge):
		return SendError(c, apierrors.UploadTooLarge,
			apierrors.WithDetails(fmt.Sprintf("maximum upload size is %d bytes", h.maxUploadBytes)))
	case errors.Is(err, errMissingUpload):
		return SendError(c, apierrors.UploadMissingFile, apierrors.WithDetails(err.Error()))
	case errors.Is(err, errInvalidPeriodList):
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrMissingColumn):
		return SendError(c, apierrors.UploadMissingColumn, apierrors.WithDetails(err.Error()))
	case errors.Is(err, errUnusableUpload) && errors.Is(err, services.ErrInvalidArgument):
		return SendError(c, apierrors.UploadUnreadable, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrTooManyPeriods):
		return SendError(c, apierrors.ReportTooManyPeriods, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrInvalidArgument):
		return SendError(c, apierrors.ReportInvalidPeriod, apierrors.WithDetails(err.Error()))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return SendError(c, apierrors.ReportGenerationAbort)
	default:
		return SendSystemError(c, err)
	}
}
