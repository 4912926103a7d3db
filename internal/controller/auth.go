package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo"
)

// authEmailHeader carries the verified email set by the external identity
// gate in front of this service.
const authEmailHeader = "X-Auth-Email"

// newDomainGate restricts the API to callers whose gate-verified email is in
// the allowed domain. An empty domain disables the check.
func newDomainGate(allowedDomain string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if allowedDomain == "" {
				return next(c)
			}

			email := c.Request().Header.Get(authEmailHeader)
			if email == "" {
				return c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"})
			}
			if !strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(allowedDomain)) {
				return c.JSON(http.StatusForbidden, errorResponse{"Access is limited to the " + allowedDomain + " domain"})
			}

			return next(c)
		}
	}
}
