package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ipropixel/leadfinder/pkg/models"
)

// OperatorAuth guards the API with a single shared operator token,
// accepted as "Authorization: Bearer <token>" or "X-Operator-Token".
// An empty configured token disables the check, which is only sensible
// in local development.
func OperatorAuth(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token == "" {
				return next(c)
			}

			presented := c.Request().Header.Get("X-Operator-Token")
			if presented == "" {
				auth := c.Request().Header.Get(echo.HeaderAuthorization)
				presented = strings.TrimPrefix(auth, "Bearer ")
			}

			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "You are not authorized to access this resource.",
				})
			}

			return next(c)
		}
	}
}
