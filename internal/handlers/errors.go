package handlers

import (
	"errors"
	"net/http"

	"github.com/balbalm/feed-server/internal/repositories"
	"github.com/labstack/echo/v4"
)

// httpError maps repository sentinel errors to their HTTP status. Anything
// unrecognised is a storage fault and surfaces as a 500.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, repositories.ErrPostNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	case errors.Is(err, repositories.ErrLikeNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Like not found")
	case errors.Is(err, repositories.ErrNotificationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
	case errors.Is(err, repositories.ErrProfileNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
	case errors.Is(err, repositories.ErrAlreadyLiked):
		return echo.NewHTTPError(http.StatusConflict, "Post already liked by this user")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
