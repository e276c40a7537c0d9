package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/balbalm/feed-server/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret, socialID string) string {
	t.Helper()

	claims := &models.JwtCustomClaims{
		SocialID: socialID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTAuthMiddleware(testSecret)(func(c echo.Context) error {
		return c.String(http.StatusOK, SocialIDFromContext(c))
	})
	return rec, handler(c)
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	rec, err := runAuth(t, "Bearer "+signToken(t, testSecret, "test_user"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test_user", rec.Body.String())
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	_, err := runAuth(t, "")
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestJWTAuthRejectsMalformedHeader(t *testing.T) {
	_, err := runAuth(t, "Token abc")
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestJWTAuthRejectsWrongSignature(t *testing.T) {
	_, err := runAuth(t, "Bearer "+signToken(t, "some-other-secret", "test_user"))
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestJWTAuthRejectsMissingSocialID(t *testing.T) {
	_, err := runAuth(t, "Bearer "+signToken(t, testSecret, ""))
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
