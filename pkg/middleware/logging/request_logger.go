package loggingmw

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/product_catalog/pkg/logging"
)

// RequestLogger attaches a request-scoped logger to the request context and
// writes one request_completed record per request.
//
// contextKeys name echo context values (set by later middleware such as the
// auth guard) that are copied into the record when present, so a record for
// a protected route carries the caller's identity.
func RequestLogger(base *slog.Logger, contextKeys ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			l := base.With(
				"method", req.Method,
				"route", c.Path(),
				"url", req.URL.Path,
				"remote_ip", c.RealIP(),
			)
			if rid := requestID(c); rid != "" {
				l = l.With("request_id", rid)
				c.Response().Header().Set(echo.HeaderXRequestID, rid)
			}
			c.SetRequest(req.WithContext(logging.IntoContext(req.Context(), l)))

			start := time.Now()
			err := next(c)
			if err != nil {
				// render now so the logged status is the one the client receives
				c.Echo().HTTPErrorHandler(err, c)
			}

			res := c.Response()
			attrs := []any{
				"status", res.Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"bytes", res.Size,
			}
			for _, key := range contextKeys {
				if v := c.Get(key); v != nil {
					attrs = append(attrs, key, v)
				}
			}
			if err != nil {
				attrs = append(attrs, "error", err.Error())
			}

			l.Log(req.Context(), levelFor(res.Status), "request_completed", attrs...)
			return nil
		}
	}
}

func requestID(c echo.Context) string {
	if rid := c.Request().Header.Get(echo.HeaderXRequestID); rid != "" {
		return rid
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
