// Package runtime owns the membership manager and everything that reacts to it:
// notification pipeline, telemetry and supervised background workers.
// Membership rules live in the manager only.
package runtime

import (
	"context"
	"embed"
	"log/slog"
	"room-lab/contract"
	"room-lab/domain/event"
	"room-lab/runtime/workers"
	"sync"
	"time"
)

//go:embed censored/*
var CensoredFolder embed.FS

type Settings struct {
	BufferSize           int
	SinkTimeout          time.Duration
	RestartInterval      time.Duration
	MetricInterval       time.Duration
	LatencyThreshold     time.Duration
	LowCapacityThreshold int
}

// Orchestrator connects the manager notifications to the asynchronous sinks.
// The manager call path only ever touches the ChannelListener, which never blocks.
type Orchestrator struct {
	mu              sync.Mutex
	log             *slog.Logger
	manager         *Manager
	supervisor      contract.ISupervisor
	listener        *workers.ChannelListener
	unsubscribe     func()
	stopped         bool
	sinks           []contract.EventSink
	events          chan event.Event
	telemetryEvents chan event.Event
	counter         *event.Counter
	restarts        *event.Counter
	settings        Settings
}

func NewOrchestrator(log *slog.Logger, manager *Manager, settings Settings) *Orchestrator {
	events := make(chan event.Event, settings.BufferSize)
	telemetryEvents := make(chan event.Event, settings.BufferSize)
	return &Orchestrator{
		log:             log,
		manager:         manager,
		supervisor:      workers.NewSupervisor(log, telemetryEvents, settings.RestartInterval),
		listener:        workers.NewChannelListener(log, events),
		events:          events,
		telemetryEvents: telemetryEvents,
		counter:         event.NewCounter(),
		restarts:        event.NewCounter(),
		settings:        settings,
	}
}

// Add registers sinks. Only sinks added before Start receive events.
func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sinks = append(o.sinks, sinks...)
}

// Start subscribes to the manager and runs every worker until ctx is done or Stop is called.
// It blocks. Once stopped, Start returns at once.
func (o *Orchestrator) Start(ctx context.Context) {
	// Built without holding the lock
	telemetry := workers.NewTelemetryWorker(o.log, o.telemetryEvents, o.handlers())
	capacity := workers.NewChannelCapacityWorker(o.log, []workers.NamedChannel{
		{Name: "events", Channel: o.events},
		{Name: "telemetry", Channel: o.telemetryEvents},
	}, o.telemetryEvents, o.settings.MetricInterval)
	heartbeat := workers.NewHeartbeatWorker(o.log, o.telemetryEvents, o.manager, o.settings.MetricInterval)

	o.mu.Lock()
	if o.stopped {
		o.mu.Unlock()
		return
	}
	fanout := workers.NewEventFanout(o.log, o.events, o.telemetryEvents, o.settings.SinkTimeout).Add(o.sinks...)
	o.supervisor.Add(fanout, telemetry, capacity, heartbeat)
	o.unsubscribe = o.manager.Subscribe(o.listener)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
}

func (o *Orchestrator) handlers() []event.Handler {
	return []event.Handler{
		event.NewCountingHandler(o.counter),
		event.NewStrandedHandler(o.log),
		event.NewEvictionHandler(o.log),
		event.NewLatencyHandler(o.log, o.settings.LatencyThreshold),
		event.NewChannelCapacityHandler(o.log, o.settings.LowCapacityThreshold),
		event.NewProcessTrackerHandler(o.log),
		event.NewWorkerRestartedAfterPanicHandler(o.log, o.restarts),
	}
}

// Stop detaches from the manager then cancels the workers.
// Events still queued are abandoned.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.mu.Lock()
	o.stopped = true
	if o.unsubscribe != nil {
		o.unsubscribe()
		o.unsubscribe = nil
	}
	o.supervisor.Stop()
	o.mu.Unlock()
}

// Stats gives the number of events seen by telemetry, per type
func (o *Orchestrator) Stats() map[event.Type]uint64 {
	stats := o.counter.Snapshot()
	if dropped := o.listener.Dropped(); dropped > 0 {
		stats["DROPPED"] = dropped
	}
	return stats
}
