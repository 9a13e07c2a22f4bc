package workers

import (
	"context"
	"log/slog"
	"room-lab/contract"
	"room-lab/domain/event"
	"time"
)

// EventFanout broadcasts membership events to multiple in-process consumers.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// durability, or retries. EventFanout is not a message broker.
//
// It is intended for observability and side effects (journal, projections, logs),
// never for the membership logic itself, which is already done when an event
// reaches this worker.
type EventFanout struct {
	log           *slog.Logger
	events        chan event.Event
	telemetryChan chan event.Event
	sinks         []contract.EventSink
	sinkTimeout   time.Duration
}

func NewEventFanout(log *slog.Logger, events, telemetryChan chan event.Event, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{log: log, events: events, telemetryChan: telemetryChan, sinkTimeout: sinkTimeout}
}

func (w *EventFanout) Add(sinks ...contract.EventSink) *EventFanout {
	w.sinks = append(w.sinks, sinks...)
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.events:
			w.Fanout(ctx, evt)
			select {
			case w.telemetryChan <- evt:
			default:
				w.log.Debug("Observability telemetry event lost")
			}
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// Fanout One sink for each event, in registration order.
// A slow sink is abandoned after sinkTimeout.
func (w *EventFanout) Fanout(ctx context.Context, evt event.Event) {
	for _, sink := range w.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Sink failed to consume event", "sink", sinkName(sink), "type", evt.Type, "error", err)
		}
		cancel()
	}
}

func sinkName(sink contract.EventSink) string {
	if named, ok := sink.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "anonymous"
}
