package middleware

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"apptbook/internal/config"
)

// captureWriter tees the response body while it streams to the client so
// a successful payload can be stored in Redis afterwards.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *captureWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheGET caches successful GET responses in Redis for the configured
// TTL, keyed by request path and raw query. It fronts GET /slots, the
// hottest read in the service. Staleness is bounded by the TTL rather
// than by invalidation on book/cancel; a just-booked slot may linger in
// the listing for a few seconds, and booking it answers "Slot already
// booked" exactly as if the race had been lost at the database.
//
// Any Redis failure falls through to the handler, same policy as the
// rate limiter.
func CacheGET(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cfg.Prefix + ":" + c.Request().URL.Path
			if q := c.Request().URL.RawQuery; q != "" {
				key += "?" + q
			}

			ctx := c.Request().Context()
			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK && cw.buf.Len() <= cfg.MaxBodyBytes {
				_ = rdb.Set(ctx, key, cw.buf.Bytes(), cfg.TTL).Err()
			}
			return nil
		}
	}
}
