package http

import (
	"time"

	"github.com/GriffinCanCode/PowerTransform/internal/infrastructure/monitoring"
)

// HandlerMetrics wraps handlers with metrics tracking. All methods are safe
// to call on a nil receiver, which disables recording.
type HandlerMetrics struct {
	metrics *monitoring.Metrics
}

// NewHandlerMetrics creates a metrics wrapper
func NewHandlerMetrics(metrics *monitoring.Metrics) *HandlerMetrics {
	return &HandlerMetrics{metrics: metrics}
}

// TrackServiceOperation times a tool execution. The returned func records
// the call with the given status.
func (hm *HandlerMetrics) TrackServiceOperation(operation string) func(status string) {
	if hm == nil || hm.metrics == nil {
		return func(string) {}
	}
	start := time.Now()
	return func(status string) {
		duration := time.Since(start)
		hm.metrics.RecordServiceCall("registry", operation, status, duration)
	}
}

// TrackServiceError records a tool execution error.
func (hm *HandlerMetrics) TrackServiceError(operation, errorType string) {
	if hm == nil || hm.metrics == nil {
		return
	}
	hm.metrics.RecordServiceError("registry", operation, errorType)
}
