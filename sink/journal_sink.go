package sink

import (
	"context"
	"fmt"
	"log/slog"
	"room-lab/domain/event"
	"room-lab/infrastructure/storage"
)

// JournalSink writes every membership notification to the journal
type JournalSink struct {
	repository storage.IJournalRepository
	log        *slog.Logger
}

func NewJournalSink(repository storage.IJournalRepository, log *slog.Logger) JournalSink {
	return JournalSink{repository: repository, log: log}
}

func (j JournalSink) Name() string {
	return "journal"
}

func (j JournalSink) Consume(ctx context.Context, e event.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entry, ok := ToJournalEntry(e)
	if !ok {
		j.log.Debug(fmt.Sprintf("Not journaled event : %v", e.Type))
		return nil
	}
	return j.repository.Append(entry)
}

// ToJournalEntry maps a membership notification to its disk form.
// Technical events are not journaled.
func ToJournalEntry(e event.Event) (storage.JournalEntry, bool) {
	entry := storage.JournalEntry{Type: string(e.Type), AtNano: e.At.UnixNano()}
	switch payload := e.Payload.(type) {
	case event.UserTransferred:
		entry.User = string(payload.User)
		entry.Source = int(payload.Source)
		entry.Destination = int(payload.Destination)
	case event.UserStranded:
		entry.User = string(payload.User)
		entry.Source = int(payload.Source)
		entry.Destination = int(payload.Destination)
	case event.UserForcedOut:
		entry.User = string(payload.User)
		entry.Room = int(payload.Room)
	case event.RoomDeleted:
		entry.Room = int(payload.Room)
	default:
		return storage.JournalEntry{}, false
	}
	return entry, true
}
