package event

import (
	"room-lab/domain"
)

const (
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
	ChannelCapacityType     Type = "CHANNEL_CAPACITY"
	ProcessStatsType        Type = "PROCESS_STATS"
)

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

type ChannelCapacity struct {
	ChannelName string
	Capacity    int
	Length      int
}

// ProcessStats is published by the heartbeat worker
type ProcessStats struct {
	PID       domain.PID
	Status    domain.PidStatus
	Cpu       float64
	Ram       uint64
	Rooms     int
	Occupants int
	Stranded  int
}
