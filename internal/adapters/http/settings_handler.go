package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopease/core/internal/application/services"
	"github.com/shopease/core/internal/infrastructure/logger"
	"github.com/shopease/core/internal/ports"
)

// SettingsHandler handles store configuration requests
type SettingsHandler struct {
	settingsService *services.SettingsService
	logger          *logger.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *services.SettingsService, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// Get handles reading the settings record
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.settingsService.Get(c.Request().Context())
	if err != nil {
		h.logger.Error("Get settings failed", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, settings)
}

// Update handles the shallow-merge settings update and returns the merged
// record
func (h *SettingsHandler) Update(c echo.Context) error {
	var update ports.SettingsUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	settings, err := h.settingsService.Update(c.Request().Context(), update)
	if err != nil {
		h.logger.Error("Update settings failed", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, settings)
}
