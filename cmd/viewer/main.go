package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"room-lab/internal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if config.DebugPort <= 0 {
		log.Fatal("DEBUG_PORT is required by the viewer")
	}

	// 2. Open Badger in Read-Only mode
	// BypassLockGuard allows opening while roomctl holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// 3. Serve the journal, no manager runs here
	stats := func() map[string]any {
		return map[string]any{
			"Status": "Viewer Mode (Read-Only)",
			"Time":   time.Now().Format(time.RFC822),
		}
	}
	server := internal.StartDebugServer(db, config.DebugPort, "/inspect", internal.JournalMapper, stats)
	fmt.Printf("🌐 Viewer started at http://localhost:%d/inspect\n", config.DebugPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	_ = server.Close()
}
