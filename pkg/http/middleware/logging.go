package middleware

import (
	"time"

	"CoinPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs one structured line per request, carrying the
// request id the RequestID middleware attached.
func RequestLogging(l *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			requestID, _ := c.Get("request_id").(string)
			l.Info("http request",
				logger.String("method", c.Request().Method),
				logger.String("uri", c.Request().RequestURI),
				logger.String("remote", c.Request().RemoteAddr),
				logger.Int("status", c.Response().Status),
				logger.String("request_id", requestID),
				logger.Duration("duration", time.Since(start)),
			)

			return err
		}
	}
}
