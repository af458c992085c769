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

// AuthHandler handles admin authentication requests
type AuthHandler struct {
	authService *services.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login handles admin login
func (h *AuthHandler) Login(c echo.Context) error {
	var req services.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.logger.Warn("Login failed", "email", req.Email, "ip", c.RealIP())
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	return c.JSON(http.StatusOK, response)
}

// Verify confirms the presented bearer token and returns the admin identity.
// The auth middleware has already rejected invalid tokens by the time this
// runs.
func (h *AuthHandler) Verify(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]entities.Admin{
		"admin": h.authService.Admin(),
	})
}

// ProductHandler handles catalog requests
type ProductHandler struct {
	productService *services.ProductService
	logger         *logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *services.ProductService, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// List handles the public and admin catalog listings
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("List products failed", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, products)
}

// Create handles product creation
func (h *ProductHandler) Create(c echo.Context) error {
	var req services.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.Create(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Create product failed", "error", err)
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// Update handles a partial product update
func (h *ProductHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var update ports.ProductUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.Update(c.Request().Context(), id, update)
	if err != nil {
		if errors.Is(err, entities.ErrProductNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		h.logger.Error("Update product failed", "error", err, "product_id", id)
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// Delete handles product deletion. Deleting an id that does not exist still
// succeeds; the endpoint never responds 404.
func (h *ProductHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		h.logger.Error("Delete product failed", "error", err, "product_id", id)
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
