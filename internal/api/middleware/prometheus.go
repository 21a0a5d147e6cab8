package middleware

import (
	"strconv"
	"time"

	"ftwallet/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Prometheus records request duration/count/in-flight metrics for every
// request, labeled by the replica this process is playing.
func Prometheus(replica string) gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		method := c.Request.Method
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}
		statusCode := strconv.Itoa(c.Writer.Status())

		metrics.HTTPDuration.WithLabelValues(method, endpoint, statusCode, replica).Observe(duration.Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode, replica).Inc()
	}
}
