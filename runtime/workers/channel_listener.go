package workers

import (
	"log/slog"
	"room-lab/domain/event"
	"sync/atomic"
)

// ChannelListener hands manager notifications over to the asynchronous pipeline.
// Notify never blocks the manager: when the channel is full the event is dropped
// and counted.
type ChannelListener struct {
	log     *slog.Logger
	events  chan<- event.Event
	dropped atomic.Uint64
}

func NewChannelListener(log *slog.Logger, events chan<- event.Event) *ChannelListener {
	return &ChannelListener{log: log, events: events}
}

func (l *ChannelListener) Notify(e event.Event) {
	select {
	case l.events <- e:
	default:
		l.dropped.Add(1)
		l.log.Warn("Membership event dropped, pipeline is full", "type", e.Type)
	}
}

func (l *ChannelListener) Dropped() uint64 {
	return l.dropped.Load()
}
