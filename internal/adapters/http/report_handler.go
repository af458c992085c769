package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopease/core/internal/application/services"
	"github.com/shopease/core/internal/infrastructure/logger"
)

// ReportHandler handles admin dashboard report requests
type ReportHandler struct {
	reportService *services.ReportService
	logger        *logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService, logger *logger.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// Summary handles the store-wide totals report
func (h *ReportHandler) Summary(c echo.Context) error {
	report, err := h.reportService.Summary(c.Request().Context())
	if err != nil {
		h.logger.Error("Summary report failed", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, report)
}

// Sales handles the monthly sales series report
func (h *ReportHandler) Sales(c echo.Context) error {
	series, err := h.reportService.Sales(c.Request().Context())
	if err != nil {
		h.logger.Error("Sales report failed", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, series)
}

// TopProducts handles the top-products report
func (h *ReportHandler) TopProducts(c echo.Context) error {
	top, err := h.reportService.TopProducts(c.Request().Context())
	if err != nil {
		h.logger.Error("Top products report failed", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, top)
}
