package middleware

import (
	"log/slog"
	"time"

	"wikifeed/utils/logger"

	"github.com/labstack/echo/v4"
)

// LoggingMiddleware logs request start and completion with the request id
// carried in the context. Health probes are skipped to keep the log quiet.
func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.URL.Path == "/v1/health" {
				return next(c)
			}

			start := time.Now()
			ctx := req.Context()

			contextLogger.WithContext(ctx).InfoContext(ctx, "request started",
				"method", req.Method,
				"path", req.URL.Path,
				"remote_addr", c.RealIP(),
			)

			err := next(c)

			res := c.Response()
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"response_size", res.Size,
			}

			switch {
			case res.Status >= 500:
				contextLogger.WithContext(ctx).ErrorContext(ctx, "request completed", attrs...)
			case res.Status >= 400:
				contextLogger.WithContext(ctx).WarnContext(ctx, "request completed", attrs...)
			default:
				contextLogger.WithContext(ctx).InfoContext(ctx, "request completed", attrs...)
			}

			return err
		}
	}
}
