package event

import (
	"log/slog"
	"time"
)

// LatencyHandler measures how long a notification took to travel
// from the manager to the telemetry pipeline.
type LatencyHandler struct {
	log              *slog.Logger
	latencyThreshold time.Duration
}

func NewLatencyHandler(log *slog.Logger, latencyThreshold time.Duration) *LatencyHandler {
	return &LatencyHandler{log: log, latencyThreshold: latencyThreshold}
}

func (h *LatencyHandler) Handle(e Event) {
	if _, ok := e.Payload.(DomainEvent); !ok {
		return
	}
	leadTime := time.Since(e.At)

	h.log.Debug("telemetry: notification latency",
		"type", e.Type,
		"lead_time_ms", leadTime.Milliseconds(),
		"lead_time_ns", leadTime.Nanoseconds(),
	)

	if leadTime > h.latencyThreshold {
		h.log.Warn("high latency detected", "type", e.Type, "lead_time", leadTime)
	}
}
