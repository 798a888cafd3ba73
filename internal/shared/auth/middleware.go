package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyToken is where middleware stores the raw bearer token so
	// downstream calls can forward it to the upstream APIs verbatim.
	ContextKeyToken = "auth.token"
	// ContextKeyClaims is where middleware stores the validated claims.
	ContextKeyClaims = "auth.claims"
)

// RequireAdmin validates the bearer token and rejects non-administrative
// callers. Session bootstrap itself lives in the external auth service; this
// layer only verifies and forwards.
func RequireAdmin(validator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractBearerToken(c.Request())
			claims, err := validator.Validate(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}
			if !claims.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "administrative role required")
			}
			c.Set(ContextKeyToken, token)
			c.Set(ContextKeyClaims, claims)
			return next(c)
		}
	}
}

// TokenFromContext retrieves the bearer token stored by RequireAdmin.
func TokenFromContext(c echo.Context) string {
	token, _ := c.Get(ContextKeyToken).(string)
	return token
}
