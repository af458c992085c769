package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopease/core/internal/application/services"
	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/infrastructure/logger"
)

// UpdateOrderStatusRequest carries the one field an admin may change on an
// order.
type UpdateOrderStatusRequest struct {
	Status entities.OrderStatus `json:"status" validate:"required"`
}

// OrderHandler handles checkout and order administration requests
type OrderHandler struct {
	orderService *services.OrderService
	logger       *logger.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *services.OrderService, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// List handles the public and admin order listings
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orderService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("List orders failed", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

// Checkout handles public order placement
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req services.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orderService.Checkout(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Checkout failed", "error", err)
		return err
	}

	return c.JSON(http.StatusCreated, order)
}

// UpdateStatus handles the admin order status change
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrOrderNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Order not found")
		case errors.Is(err, entities.ErrInvalidStatus):
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid order status")
		}
		h.logger.Error("Update order status failed", "error", err, "order_id", id)
		return err
	}

	return c.JSON(http.StatusOK, order)
}
