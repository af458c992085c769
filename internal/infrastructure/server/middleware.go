package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopease/core/internal/application/services"
)

// authMiddleware validates the bearer credential on admin routes. On
// mismatch it responds 401 and performs no further work.
func (s *Server) authMiddleware(authService *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == authHeader {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			admin, err := authService.ValidateToken(token)
			if err != nil {
				s.logger.LogSecurityEvent("invalid_token", c.RealIP(), map[string]interface{}{
					"endpoint": c.Request().URL.Path,
				})
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set("admin", admin)

			return next(c)
		}
	}
}
