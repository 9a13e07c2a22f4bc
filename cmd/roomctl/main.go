package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"room-lab/infrastructure/storage"
	"room-lab/internal"
	"room-lab/moderation"
	"room-lab/projection"
	"room-lab/runtime"
	"room-lab/services"
	"room-lab/sink"
	"room-lab/ui"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run keeps every defer (database first) executed before the process exits
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Moderation of room names
	dictionaries := map[string][]string{}
	if words := internal.Words(config.CensoredWords); len(words) > 0 {
		dictionaries["custom"] = words
	} else {
		data, err := runtime.NewCensoredLoader(runtime.CensoredFolder).LoadAll("censored")
		if err != nil {
			return fmt.Errorf("censored words loading failed: %w", err)
		}
		log.Info(fmt.Sprintf("%d censored files loaded [%s]", len(data.Languages), strings.Join(data.Languages, ",")))
		dictionaries = data.Dictionaries
	}
	moderator, err := moderation.NewLanguageModerator(dictionaries, charReplacement, log)
	if err != nil {
		return fmt.Errorf("moderator build failed: %w", err)
	}

	// 4. Manager & Orchestration
	manager := runtime.NewManager(log, runtime.NewRoomStore())
	journal := storage.NewJournalRepository(db, log)
	orchestrator := runtime.NewOrchestrator(log, manager, runtime.Settings{
		BufferSize:           config.BufferSize,
		SinkTimeout:          config.SinkTimeout,
		RestartInterval:      config.RestartInterval,
		MetricInterval:       config.MetricInterval,
		LatencyThreshold:     config.LatencyThreshold,
		LowCapacityThreshold: config.LowCapacityThreshold,
	})
	whereabouts := projection.NewWhereabouts()
	orchestrator.Add(sink.NewJournalSink(journal, log), whereabouts)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		orchestrator.Start(ctx)
	}()

	stats := func() map[string]uint64 {
		out := make(map[string]uint64)
		for k, v := range orchestrator.Stats() {
			out[string(k)] = v
		}
		return out
	}

	// 6. Optional inspector
	if config.DebugPort > 0 {
		server := internal.StartDebugServer(db, config.DebugPort, "/inspect", internal.JournalMapper, func() map[string]any {
			occupancy := manager.Occupancy()
			return map[string]any{
				"Rooms":     occupancy.Rooms,
				"Occupants": occupancy.Occupants,
				"Stranded":  occupancy.Stranded,
			}
		})
		log.Info("Inspector started", "url", fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort))
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	// 7. Shell, until quit, end of input or signal
	service := services.NewRoomService(log, manager, moderator)
	shell := ui.NewShell(log, service, journal, whereabouts, stats, os.Stdout, true, config.JournalLimit)
	shellErr := make(chan error, 1)
	go func() {
		shellErr <- shell.Run(ctx, os.Stdin)
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err = <-shellErr:
		if err != nil {
			log.Error("Shell stopped", "error", err)
		}
	}

	// 8. Final Cleanup
	orchestrator.Stop()
	<-stopped
	log.Info("Program stopped cleanly")
	return err
}
