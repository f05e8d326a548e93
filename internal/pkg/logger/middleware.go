package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware logs each HTTP request with method, path, status and
// latency through the given logger.
func EchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			userID := "anonymous"
			if v := c.Get("user_id"); v != nil {
				userID = fmt.Sprintf("%v", v)
			}

			fields := []Field{
				String("method", method),
				String("path", path),
				String("client_ip", c.RealIP()),
				String("user_id", userID),
				String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				Int("status", statusCode),
				Duration("latency", latency),
			}
			if err != nil {
				fields = append(fields, Err(err))
			}

			switch {
			case statusCode >= 500:
				logger.Error("HTTP request", fields...)
			case statusCode >= 400:
				logger.Warn("HTTP request", fields...)
			default:
				logger.Info("HTTP request", fields...)
			}

			return err
		}
	}
}
