package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/zuperior/content-api/internal/core/ports"
	"github.com/zuperior/content-api/internal/pkg/metrics"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "Idempotent-Replayed"
)

// Idempotency replays the first 2xx response stored for the request's
// Idempotency-Key. Requests without the header pass through untouched.
// A nil store disables the middleware. Store failures never fail the request.
func Idempotency(store ports.IdempotencyStore, ttl time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if store == nil {
			return next
		}
		return func(c echo.Context) error {
			key := c.Request().Header.Get(HeaderIdempotencyKey)
			if key == "" {
				return next(c)
			}
			storeKey := "idempotency:" + c.Request().Method + ":" + c.Request().URL.Path + ":" + key
			ctx := c.Request().Context()

			stored, found, err := store.Get(ctx, storeKey)
			switch {
			case err != nil:
				metrics.IdempotencyLookupsTotal.WithLabelValues("error").Inc()
				log.Warn().Err(err).Str("key", key).Msg("idempotency lookup failed")
			case found:
				metrics.IdempotencyLookupsTotal.WithLabelValues("hit").Inc()
				c.Response().Header().Set(HeaderReplayed, "true")
				return c.Blob(stored.Status, stored.ContentType, stored.Body)
			default:
				metrics.IdempotencyLookupsTotal.WithLabelValues("miss").Inc()
			}

			res := c.Response()
			rec := &bodyRecorder{ResponseWriter: res.Writer}
			res.Writer = rec
			defer func() { res.Writer = rec.ResponseWriter }()

			if err := next(c); err != nil {
				return err
			}

			if res.Status < http.StatusOK || res.Status >= http.StatusMultipleChoices {
				return nil
			}
			captured := ports.StoredResponse{
				Status:      res.Status,
				ContentType: res.Header().Get(echo.HeaderContentType),
				Body:        rec.body.Bytes(),
			}
			if err := store.Save(ctx, storeKey, captured, ttl); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("idempotency save failed")
			}
			return nil
		}
	}
}

// bodyRecorder copies everything written to the client.
type bodyRecorder struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}
