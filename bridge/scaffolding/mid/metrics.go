package mid

import (
	"context"
	"net/http"
	"time"

	"github.com/mann-127/duoapi/bridge/scaffolding/metrics"
	"github.com/mann-127/duoapi/infrastructure/web"
)

// Metrics updates program counters.
func Metrics() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			now := time.Now()

			resp := next(ctx, r)

			metrics.AddRequest(r.Method, r.URL.Path)
			metrics.ObserveDuration(r.Method, r.URL.Path, time.Since(now).Seconds())

			if isError(resp) != nil {
				metrics.AddError(r.Method, r.URL.Path)
			}

			return resp
		}
	}
}
