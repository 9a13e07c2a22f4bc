package event

import (
	"fmt"
	"log/slog"
	"room-lab/errors"
)

type ProcessTrackerHandler struct {
	log *slog.Logger
}

func NewProcessTrackerHandler(log *slog.Logger) *ProcessTrackerHandler {
	return &ProcessTrackerHandler{log: log}
}

func (h ProcessTrackerHandler) Handle(event Event) {
	switch event.Type {
	case ProcessStatsType:
		payload, ok := event.Payload.(ProcessStats)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.log.Debug(fmt.Sprintf(" [HEARTBEAT] | PID %d | STATUS %s | CPU %.2f%% | RAM %d B | ROOMS %d | OCCUPANTS %d",
			payload.PID, payload.Status, payload.Cpu, payload.Ram, payload.Rooms, payload.Occupants))
		if payload.Stranded > 0 {
			h.log.Warn("stranded users still waiting for rescue", "count", payload.Stranded)
		}
	}
}
