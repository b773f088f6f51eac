package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"appointment-booking-api/pkg/metrics"
)

// Prometheus records a counter and duration histogram per request, labelled
// by the route pattern (not the raw path, to keep cardinality bounded).
func Prometheus() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}
