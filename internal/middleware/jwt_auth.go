package middleware

import (
	"net/http"
	"strings"

	"github.com/balbalm/feed-server/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const socialIDContextKey = "socialID"

// JWTAuthMiddleware checks for a valid bearer token and stores the social id
// claim in the request context. The signing secret is injected at setup time
// rather than read from the environment per request.
func JWTAuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
			}
			tokenString := parts[1]

			claims := &models.JwtCustomClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authentication credentials")
			}

			if claims.SocialID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing social_id")
			}

			c.Set(socialIDContextKey, claims.SocialID)

			return next(c)
		}
	}
}

// SocialIDFromContext returns the authenticated user's social id, or an
// empty string when the request never passed the auth middleware.
func SocialIDFromContext(c echo.Context) string {
	socialID, _ := c.Get(socialIDContextKey).(string)
	return socialID
}
