package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dailyfood/internal/auth"
	"dailyfood/internal/errors"
	"dailyfood/internal/service"
)

// AuthMiddleware resolves verified bearer tokens to accounts.
type AuthMiddleware struct {
	authService service.AuthService
}

// NewAuthMiddleware creates the middleware set.
func NewAuthMiddleware(authService service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireUser loads the account behind the token claims stored under claimsKey.
// Revoked tokens and tokens of deleted accounts are rejected with 401.
func (m *AuthMiddleware) RequireUser(claimsKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsKey).(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "invalid or expired token",
					Code:  "UNAUTHENTICATED",
				})
			}

			user, err := m.authService.Authenticate(c.Request().Context(), claims)
			if err != nil {
				return fail(err)
			}

			c.Set(ContextKeyClaims, claims)
			c.Set(ContextKeyUser, user)
			return next(c)
		}
	}
}

// RequireAdmin rejects accounts without the admin flag. It must run after
// RequireUser.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := currentUser(c)
		if user == nil {
			return fail(errors.ErrUnauthenticated)
		}
		if !user.IsAdmin {
			return fail(errors.ErrForbidden)
		}
		return next(c)
	}
}
