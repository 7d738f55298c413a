package metrics

import (
	"database/sql"
	"time"
)

// RecordDBQuery records one database query with its outcome
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute(func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		m.dbQueriesTotal.WithLabelValues(operation, table, status).Inc()
		m.dbQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	})
}

// UpdateDBStats publishes connection pool stats. The argument is typed
// interface{} to keep the database package decoupled from this one.
func (m *Metrics) UpdateDBStats(stats interface{}) {
	m.safeExecute(func() {
		dbStats, ok := stats.(sql.DBStats)
		if !ok {
			return
		}
		m.dbConnectionsOpen.Set(float64(dbStats.OpenConnections))
		m.dbConnectionsIdle.Set(float64(dbStats.Idle))
		m.dbConnectionsInUse.Set(float64(dbStats.InUse))
	})
}
