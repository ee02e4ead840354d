package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/imaging-leads/internal/auth"
)

// StaffContextKey is echo context key under which verified staff claims are kept
const StaffContextKey = "staff"

// Authorize verifies bearer access token of staff member
func Authorize(validator *auth.JwtValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHdr := c.Request().Header.Get(echo.HeaderAuthorization)
			hdrSplit := strings.Split(authHdr, " ")
			if len(hdrSplit) != 2 || !strings.EqualFold(hdrSplit[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid Authorization header format")
			}

			claims, err := validator.Verify(hdrSplit[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(StaffContextKey, claims)
			return next(c)
		}
	}
}
