package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/metrics"
)

// Metrics returns a middleware that records HTTP metrics for each request
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		if metrics.ShouldSkipEndpoint(endpoint) {
			c.Next()
			return
		}

		m.IncRequestsInFlight()
		start := time.Now()

		c.Next()

		m.DecRequestsInFlight()
		m.RecordHTTPRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}
