package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safarisalama/internal/model"
)

func TestRequireAdmin(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	tests := []struct {
		name         string
		claims       *Claims
		expectedCode int
	}{
		{"admin role passes", &Claims{Role: model.RoleAdmin}, http.StatusOK},
		{"guardian role is rejected", &Claims{Role: model.RoleGuardian}, http.StatusForbidden},
		{"missing token is rejected", nil, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.claims != nil {
				c.Set("user", &jwt.Token{Claims: tt.claims})
			}

			err := RequireAdmin(next)(c)
			if tt.expectedCode == http.StatusOK {
				assert.NoError(t, err)
				return
			}

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
		})
	}
}

func TestMiddleware(t *testing.T) {
	e := echo.New()
	e.GET("/secure", func(c echo.Context) error {
		claims, ok := FromContext(c)
		if !ok {
			return echo.NewHTTPError(http.StatusInternalServerError, "claims missing")
		}
		return c.JSON(http.StatusOK, echo.Map{"id": claims.ID, "role": claims.Role})
	}, Middleware("test-secret"))

	jwtService := NewJWTService("test-secret", 7)
	token, err := jwtService.Generate(5, "alice@example.com", "Alice", model.RoleGuardian)
	require.NoError(t, err)

	t.Run("valid token reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":5,"role":"guardian"}`, rec.Body.String())
	})

	t.Run("missing and invalid tokens are denied identically", func(t *testing.T) {
		missing := httptest.NewRequest(http.MethodGet, "/secure", nil)
		missingRec := httptest.NewRecorder()
		e.ServeHTTP(missingRec, missing)

		invalid := httptest.NewRequest(http.MethodGet, "/secure", nil)
		invalid.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
		invalidRec := httptest.NewRecorder()
		e.ServeHTTP(invalidRec, invalid)

		assert.Equal(t, http.StatusUnauthorized, missingRec.Code)
		assert.Equal(t, http.StatusUnauthorized, invalidRec.Code)
		assert.Equal(t, missingRec.Body.String(), invalidRec.Body.String())
	})
}
