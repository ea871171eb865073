package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminAuthMiddleware gates admin-only routes. It runs behind
// JWTAuthMiddleware and trusts the IsAdmin claim carried by the token: the
// flag is a capability snapshot taken at issuance, so a demoted admin keeps
// access until their token expires. That staleness window is a deliberate
// design choice, not an oversight.
func AdminAuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := UserClaims(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required for admin access")
			}
			if !claims.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden: Admin access required")
			}
			return next(c)
		}
	}
}
