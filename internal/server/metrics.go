package server

import "sync"

// Metrics holds the service counters. Each Server owns one instance;
// a snapshot is logged at shutdown.
type Metrics struct {
	mu sync.RWMutex

	requestsTotal    int64
	requestErrors4xx int64
	requestErrors5xx int64

	uploadsTotal          int64
	uploadBytesTotal      int64
	uploadErrorsTotal     int64
	oversizeRejectedTotal int64
}

// RecordRequest records one completed HTTP request.
func (m *Metrics) RecordRequest(statusCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestsTotal++
	if statusCode >= 500 {
		m.requestErrors5xx++
	} else if statusCode >= 400 {
		m.requestErrors4xx++
	}
}

// RecordUpload records a file successfully written to disk.
func (m *Metrics) RecordUpload(bytes int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadsTotal++
	m.uploadBytesTotal += bytes
}

// RecordUploadError records an upload that failed server-side.
func (m *Metrics) RecordUploadError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadErrorsTotal++
}

// RecordOversizeReject records a drained-and-rejected oversized body.
func (m *Metrics) RecordOversizeReject() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.oversizeRejectedTotal++
}

// Snapshot returns a point-in-time copy of the counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return MetricsSnapshot{
		RequestsTotal:         m.requestsTotal,
		RequestErrors4xx:      m.requestErrors4xx,
		RequestErrors5xx:      m.requestErrors5xx,
		UploadsTotal:          m.uploadsTotal,
		UploadBytesTotal:      m.uploadBytesTotal,
		UploadErrorsTotal:     m.uploadErrorsTotal,
		OversizeRejectedTotal: m.oversizeRejectedTotal,
	}
}

// MetricsSnapshot represents a point-in-time view of the counters.
type MetricsSnapshot struct {
	RequestsTotal         int64 `json:"requests_total"`
	RequestErrors4xx      int64 `json:"request_errors_4xx"`
	RequestErrors5xx      int64 `json:"request_errors_5xx"`
	UploadsTotal          int64 `json:"uploads_total"`
	UploadBytesTotal      int64 `json:"upload_bytes_total"`
	UploadErrorsTotal     int64 `json:"upload_errors_total"`
	OversizeRejectedTotal int64 `json:"oversize_rejected_total"`
}
