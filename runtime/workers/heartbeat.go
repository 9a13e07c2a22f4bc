package workers

import (
	"context"
	"log/slog"
	"os"
	"room-lab/domain"
	"room-lab/domain/event"
	"time"

	"github.com/shirou/gopsutil/process"
)

// OccupancyProvider is satisfied by the membership manager
type OccupancyProvider interface {
	Occupancy() domain.Occupancy
}

// HeartbeatWorker publishes the health of this process together with
// the current room occupancy, every interval.
type HeartbeatWorker struct {
	log           *slog.Logger
	telemetryChan chan event.Event
	occupancy     OccupancyProvider
	interval      time.Duration
}

func NewHeartbeatWorker(
	log *slog.Logger,
	telemetryChan chan event.Event,
	occupancy OccupancyProvider,
	interval time.Duration,
) *HeartbeatWorker {
	return &HeartbeatWorker{
		log:           log,
		telemetryChan: telemetryChan,
		occupancy:     occupancy,
		interval:      interval,
	}
}

// Run executes the main loop of the worker, sending health metrics (CPU, RAM, Status) every interval.
func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rss, cpu, status, err := getSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			occupancy := w.occupancy.Occupancy()
			stats := event.ProcessStats{
				PID:       domain.PID(p.Pid),
				Status:    domain.ToStatus(status),
				Cpu:       cpu,
				Ram:       rss,
				Rooms:     occupancy.Rooms,
				Occupants: occupancy.Occupants,
				Stranded:  occupancy.Stranded,
			}
			select {
			case w.telemetryChan <- event.New(event.ProcessStatsType, stats):
			default:
				w.log.Debug("Observability telemetry event lost")
			}
		}
	}
}

// getSelfStats retrieves technical metrics (Memory, CPU, and OS Status) for the given process.
func getSelfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
