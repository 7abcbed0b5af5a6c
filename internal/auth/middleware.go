package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"safarisalama/internal/errors"
	"safarisalama/internal/model"
)

// tokenContextKey is where echo-jwt stores the parsed token.
const tokenContextKey = "user"

// Middleware returns the echo-jwt middleware guarding authenticated routes.
// Missing and invalid tokens are rejected with the same 401 response so the
// caller cannot tell which check failed.
func Middleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(secret),
		SigningMethod: "HS512",
		TokenLookup:   "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "invalid or missing token",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// FromContext returns the verified claims attached to the request.
func FromContext(c echo.Context) (*Claims, bool) {
	token, ok := c.Get(tokenContextKey).(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	return claims, ok
}

// RequireAdmin only lets tokens carrying the admin role through. The role
// check is purely claims-based; no account lookup happens per request.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := FromContext(c)
		if !ok || claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: errors.ErrForbidden.Error(),
				Code:  "FORBIDDEN",
			})
		}
		return next(c)
	}
}
