package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopease/core/internal/application/services"
	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/infrastructure/logger"
	"github.com/shopease/core/internal/ports"
)

// UserHandler handles admin user management requests
type UserHandler struct {
	userService *services.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// List handles listing all users
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("List users failed", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, users)
}

// Get handles getting a user by id
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		h.logger.Error("Get user failed", "error", err, "user_id", c.Param("id"))
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// Update handles a partial user update
func (h *UserHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var update ports.UserUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Update(c.Request().Context(), id, update)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		h.logger.Error("Update user failed", "error", err, "user_id", id)
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// Delete handles user deletion
func (h *UserHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		h.logger.Error("Delete user failed", "error", err, "user_id", id)
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}

// MessageResponse is a plain informational response body
type MessageResponse struct {
	Message string `json:"message"`
}
