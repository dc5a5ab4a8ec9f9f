package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	apierrors "delivery-finance/internal/errors"
	"delivery-finance/internal/models"
	"delivery-finance/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	mimeXLSX        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	queryDateLayout = "2006-01-02"
	maxSampleDays   = 366
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	generator services.SampleExportGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(generator services.SampleExportGeneratorInterface) *DevHandler {
	return &DevHandler{generator: generator}
}

// GenerateSampleExport returns a synthetic delivery export that can be fed
// straight back into the report endpoints.
//
// Method: GET /api/v1/dev/sample-export
// Environment: Development only
//
// Query parameters:
//   - format: csv or xlsx (default: csv)
//   - from: first delivery day, YYYY-MM-DD (default: 90 days ago)
//   - to: last delivery day, YYYY-MM-DD (default: today)
//   - rows: number of deliveries (default: 100, max: 5000)
//   - dirty: percentage of rows with an unparseable date or price (default: 0)
//   - seed: random seed for reproducible output (default: random)
//
// Success Response: 200 OK with the export as an attachment
//
// Error Responses:
//   - 400: Invalid parameters
//   - 500: Internal server error
func (h *DevHandler) GenerateSampleExport(c echo.Context) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	from, err := getDateQueryParam(c, "from", today.AddDate(0, 0, -90))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}
	to, err := getDateQueryParam(c, "to", today)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}
	if to.Sub(from) > maxSampleDays*24*time.Hour {
		return SendError(c, apierrors.ValidationOutOfRange,
			apierrors.WithDetails(fmt.Sprintf("date range must not exceed %d days", maxSampleDays)))
	}

	format := c.QueryParam("format")
	if format == "" {
		format = services.SourceFormatCSV
	}

	dirty := getIntQueryParam(c, "dirty", 0)
	if dirty < 0 {
		dirty = 0
	}
	if dirty > 100 {
		dirty = 100
	}

	opts := models.SampleExportOptions{
		Format:     format,
		From:       from,
		To:         to,
		Rows:       getIntQueryParam(c, "rows", 100),
		DirtyRatio: float64(dirty) / 100,
		Seed:       uint64(getIntQueryParam(c, "seed", 0)),
	}

	export, err := h.generator.Generate(opts)
	if err != nil {
		if errors.Is(err, services.ErrInvalidArgument) {
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	contentType := "text/csv; charset=utf-8"
	if format == services.SourceFormatXLSX {
		contentType = mimeXLSX
	}
	filename := fmt.Sprintf("deliveries-%s-%s.%s", from.Format(queryDateLayout), to.Format(queryDateLayout), format)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK, contentType, export)
}

// Helper function to get integer query parameters
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getDateQueryParam(c echo.Context, key string, defaultValue time.Time) (time.Time, error) {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := time.Parse(queryDateLayout, valueStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a YYYY-MM-DD date", key)
	}
	return value, nil
}
