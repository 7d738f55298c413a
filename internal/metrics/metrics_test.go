package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	return NewWithRegistry(prometheus.NewRegistry(), nil)
}

func TestRecordHTTPRequest(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordHTTPRequest("GET", "/api/v1/boards", 200, 25*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/v1/boards", 200, 30*time.Millisecond)
	m.RecordHTTPRequest("POST", "/api/v1/boards", 500, 10*time.Millisecond)

	got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/boards", "200"))
	if got != 2 {
		t.Errorf("expected 2 GET requests recorded, got %v", got)
	}

	got = testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/v1/boards", "500"))
	if got != 1 {
		t.Errorf("expected 1 POST request recorded, got %v", got)
	}

	metric := &dto.Metric{}
	hist, err := m.httpRequestDuration.GetMetricWithLabelValues("GET", "/api/v1/boards")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := hist.(prometheus.Histogram).Write(metric); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metric.GetHistogram().GetSampleCount() != 2 {
		t.Errorf("expected 2 duration samples, got %d", metric.GetHistogram().GetSampleCount())
	}
}

func TestRequestsInFlight(t *testing.T) {
	m := newTestMetrics(t)

	m.IncRequestsInFlight()
	m.IncRequestsInFlight()
	m.DecRequestsInFlight()

	if got := testutil.ToFloat64(m.httpRequestsInFlight); got != 1 {
		t.Errorf("expected 1 request in flight, got %v", got)
	}
}

func TestRecordDBQuery(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordDBQuery("select", "boards", 2*time.Millisecond, nil)
	m.RecordDBQuery("select", "boards", 2*time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(m.dbQueriesTotal.WithLabelValues("select", "boards", "success")); got != 1 {
		t.Errorf("expected 1 successful query, got %v", got)
	}
	if got := testutil.ToFloat64(m.dbQueriesTotal.WithLabelValues("select", "boards", "error")); got != 1 {
		t.Errorf("expected 1 failed query, got %v", got)
	}
}

func TestUpdateDBStats(t *testing.T) {
	m := newTestMetrics(t)

	m.UpdateDBStats(sql.DBStats{OpenConnections: 5, Idle: 3, InUse: 2})

	if got := testutil.ToFloat64(m.dbConnectionsOpen); got != 5 {
		t.Errorf("expected 5 open connections, got %v", got)
	}
	if got := testutil.ToFloat64(m.dbConnectionsIdle); got != 3 {
		t.Errorf("expected 3 idle connections, got %v", got)
	}
	if got := testutil.ToFloat64(m.dbConnectionsInUse); got != 2 {
		t.Errorf("expected 2 connections in use, got %v", got)
	}

	// wrong type is ignored, not a panic
	m.UpdateDBStats("not-stats")
}

func TestBusinessCounters(t *testing.T) {
	m := newTestMetrics(t)

	m.IncrementBoardsCreated()
	m.IncrementTicketsCreated()
	m.IncrementTicketsCreated()
	m.IncrementTasksCompleted()
	m.RecordAuthAttempt("login", true)
	m.RecordAuthAttempt("login", false)
	m.IncrementAttachmentsUploaded()
	m.IncrementAttachmentsPurged()

	if got := testutil.ToFloat64(m.boardsCreatedTotal); got != 1 {
		t.Errorf("expected 1 board created, got %v", got)
	}
	if got := testutil.ToFloat64(m.ticketsCreatedTotal); got != 2 {
		t.Errorf("expected 2 tickets created, got %v", got)
	}
	if got := testutil.ToFloat64(m.authAttemptsTotal.WithLabelValues("login", "failure")); got != 1 {
		t.Errorf("expected 1 failed login, got %v", got)
	}
}

func TestShouldSkipEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		want     bool
	}{
		{"/metrics", true},
		{"/health", true},
		{"/ready", true},
		{"/api/v1/boards", false},
	}

	for _, tt := range tests {
		if got := ShouldSkipEndpoint(tt.endpoint); got != tt.want {
			t.Errorf("ShouldSkipEndpoint(%q) = %v, want %v", tt.endpoint, got, tt.want)
		}
	}
}
