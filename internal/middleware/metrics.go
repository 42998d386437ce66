package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"splitledger/internal/metrics"
)

// unmatchedRoute labels requests that hit no registered route, keeping label
// cardinality bounded.
const unmatchedRoute = "unmatched"

// Metrics records request counts and latency per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := c.Request.Method

		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
