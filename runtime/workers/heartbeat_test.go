package workers

import (
	"context"
	"log/slog"
	"os"
	"room-lab/domain"
	"room-lab/domain/event"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type fixedOccupancy domain.Occupancy

func (f fixedOccupancy) Occupancy() domain.Occupancy {
	return domain.Occupancy(f)
}

func TestHeartbeatWorker_PublishesProcessStats(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	telemetryChan := make(chan event.Event, 1)
	occupancy := fixedOccupancy{Rooms: 3, Occupants: 5, Stranded: 1}

	worker := NewHeartbeatWorker(log, telemetryChan, occupancy, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	select {
	case evt := <-telemetryChan:
		req.Equal(event.ProcessStatsType, evt.Type)
		stats, ok := evt.Payload.(event.ProcessStats)
		req.True(ok)
		req.Equal(domain.PID(os.Getpid()), stats.PID)
		req.Equal(3, stats.Rooms)
		req.Equal(5, stats.Occupants)
		req.Equal(1, stats.Stranded)
		req.NotZero(stats.Ram)
	case <-time.After(2 * time.Second):
		t.Fatal("no process stats published")
	}
}

func TestChannelCapacityWorker_ReportsLengths(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	telemetryChan := make(chan event.Event, 4)
	watched := make(chan event.Event, 8)
	watched <- event.Event{}

	worker := NewChannelCapacityWorker(log, []NamedChannel{
		{Name: "watched", Channel: watched},
		{Name: "not a channel", Channel: 42},
	}, telemetryChan, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	select {
	case evt := <-telemetryChan:
		capacity, ok := evt.Payload.(event.ChannelCapacity)
		req.True(ok)
		req.Equal("watched", capacity.ChannelName)
		req.Equal(8, capacity.Capacity)
		req.Equal(1, capacity.Length)
	case <-time.After(2 * time.Second):
		t.Fatal("no capacity published")
	}
}
