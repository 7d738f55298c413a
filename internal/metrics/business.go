package metrics

// IncrementBoardsCreated counts a newly created board
func (m *Metrics) IncrementBoardsCreated() {
	m.safeExecute(func() {
		m.boardsCreatedTotal.Inc()
	})
}

// IncrementTicketsCreated counts a newly created ticket
func (m *Metrics) IncrementTicketsCreated() {
	m.safeExecute(func() {
		m.ticketsCreatedTotal.Inc()
	})
}

// IncrementTasksCompleted counts a task transitioning to completed
func (m *Metrics) IncrementTasksCompleted() {
	m.safeExecute(func() {
		m.tasksCompletedTotal.Inc()
	})
}

// RecordAuthAttempt counts a login or register attempt by outcome
func (m *Metrics) RecordAuthAttempt(kind string, success bool) {
	m.safeExecute(func() {
		result := "success"
		if !success {
			result = "failure"
		}
		m.authAttemptsTotal.WithLabelValues(kind, result).Inc()
	})
}

// IncrementAttachmentsUploaded counts a confirmed attachment upload
func (m *Metrics) IncrementAttachmentsUploaded() {
	m.safeExecute(func() {
		m.attachmentsUploadedTotal.Inc()
	})
}

// IncrementAttachmentsPurged counts an expired temporary attachment removal
func (m *Metrics) IncrementAttachmentsPurged() {
	m.safeExecute(func() {
		m.attachmentsPurgedTotal.Inc()
	})
}
