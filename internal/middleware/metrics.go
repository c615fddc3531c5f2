// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rdevrajsinh/totalenc/internal/metrics"
)

// skipMetrics are operational routes that would only measure the scraper.
var skipMetrics = map[string]struct{}{
	"/metrics": {},
	"/live":    {},
}

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP requests.
// Paths are labelled with the route template so ids and slugs do not explode
// cardinality; requests that match no route share the "unmatched" label.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, skip := skipMetrics[c.FullPath()]; skip {
			c.Next()
			return
		}

		timer := metrics.NewTimer()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		timer.ObserveDuration(metrics.HTTPRequestDuration.WithLabelValues(method, path))
	}
}
