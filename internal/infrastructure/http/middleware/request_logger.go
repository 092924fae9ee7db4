package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// RequestDuration observes HTTP handling latency.
// Labels: method, route (the registered path, not the raw URI), status
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "meeting_summarizer",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method, route and status",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)

// RequestLogger logs every request through zap and records its latency.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			latency := time.Since(start)
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := strconv.Itoa(res.Status)
			RequestDuration.WithLabelValues(req.Method, route, status).Observe(latency.Seconds())

			if logger != nil {
				fields := []zap.Field{
					zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
					zap.String("method", req.Method),
					zap.String("uri", req.RequestURI),
					zap.Int("status", res.Status),
					zap.Int64("bytes_in", req.ContentLength),
					zap.Int64("bytes_out", res.Size),
					zap.Duration("latency", latency),
				}
				switch {
				case res.Status >= 500:
					logger.Error("http.request", fields...)
				case res.Status >= 400:
					logger.Warn("http.request", fields...)
				default:
					logger.Info("http.request", fields...)
				}
			}
			return nil
		}
	}
}
