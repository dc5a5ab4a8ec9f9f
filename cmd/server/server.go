package main

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"delivery-finance/internal/config"
	"delivery-finance/internal/handlers"
	"delivery-finance/internal/middleware"
	"delivery-finance/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

// multipartOverhead leaves room for the form boundaries and the dates field
// on top of the file itself.
const multipartOverhead = 64 << 10

// newServer wires services, handlers and middleware into an echo instance.
// ctx bounds background work such as the rate limiter cleanup loop.
func newServer(ctx context.Context, cfg *config.Config, reg prometheus.Registerer, gatherer prometheus.Gatherer) *echo.Echo {
	reportService := services.NewReportService(
		services.NewDeliveryTableLoader(cfg.Upload.HeaderSkipRows),
		services.NewPeriodResolver(),
		services.NewFinanceAggregator(),
		services.NewPrometheusMetrics(reg),
		services.NewReportLogger(slog.Default()),
		services.ReportOptions{
			MaxPeriods:  cfg.Report.MaxPeriods,
			MaxParallel: cfg.Report.MaxParallel,
		},
	)

	reportHandler := handlers.NewReportHandler(reportService, cfg.Upload.MaxBytes)
	healthHandler := handlers.NewHealthCheckHandler(version)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	limited := e.Group("",
		middleware.RateLimiterWithConfig(ctx, cfg.Security),
		echomiddleware.BodyLimit(bodyLimit(cfg.Upload.MaxBytes)),
	)
	limited.POST("/process-deliveries", reportHandler.ProcessDeliveries)

	v1 := limited.Group("/api/v1")
	v1.POST("/reports/delivery-finances", reportHandler.GenerateDeliveryFinanceReport)
	v1.GET("/periods/boundaries", reportHandler.GetPeriodBoundaries)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(services.NewSampleExportGenerator())
		v1.GET("/dev/sample-export", devHandler.GenerateSampleExport)
	}

	return e
}

// bodyLimit renders the upload cap in the unit syntax echo's BodyLimit expects
func bodyLimit(maxUploadBytes int64) string {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 20 << 20
	}
	kib := (maxUploadBytes + multipartOverhead + 1023) / 1024
	return strconv.FormatInt(kib, 10) + "K"
}
