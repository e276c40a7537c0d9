package middleware

import (
	"time"

	"github.com/balbalm/feed-server/pkg/logger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one line per request, tagged with a short log id so the
// entries of a single request can be grepped together.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logID := uuid.NewString()[:8]
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Log.WithFields(logrus.Fields{
				"log_id":  logID,
				"method":  c.Request().Method,
				"uri":     c.Request().RequestURI,
				"status":  c.Response().Status,
				"latency": time.Since(start).String(),
			}).Info("request")

			return err
		}
	}
}
