package metrics

import (
	"strconv"
	"time"
)

// skipEndpoints are scraped or probed constantly and would drown out the
// application traffic in the metrics
var skipEndpoints = map[string]bool{
	"/metrics": true,
	"/health":  true,
	"/ready":   true,
}

// ShouldSkipEndpoint reports whether the endpoint is excluded from HTTP metrics
func ShouldSkipEndpoint(endpoint string) bool {
	return skipEndpoints[endpoint]
}

// RecordHTTPRequest records one completed HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	m.safeExecute(func() {
		m.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
		m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

// IncRequestsInFlight increments the in-flight request gauge
func (m *Metrics) IncRequestsInFlight() {
	m.safeExecute(func() {
		m.httpRequestsInFlight.Inc()
	})
}

// DecRequestsInFlight decrements the in-flight request gauge
func (m *Metrics) DecRequestsInFlight() {
	m.safeExecute(func() {
		m.httpRequestsInFlight.Dec()
	})
}
