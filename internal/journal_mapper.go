package internal

import (
	"fmt"
	"room-lab/infrastructure/storage"
)

// JournalMapper decodes journal values, falling back to DefaultMapper for anything else
func JournalMapper(key string, val []byte) InspectRow {
	row := DefaultMapper(key, val)
	entry, err := storage.DecodeEntry(val)
	if err != nil {
		return row
	}

	row.Type = entry.Type
	row.Timestamp = entry.At().Format("15:04:05.000")
	if entry.User != "" {
		row.User = entry.User
	}
	switch {
	case entry.Source != 0 || entry.Destination != 0:
		row.Rooms = fmt.Sprintf("%d -> %d", entry.Source, entry.Destination)
	case entry.Room != 0:
		row.Rooms = fmt.Sprintf("%d", entry.Room)
	}
	row.Detail = entry.ID
	return row
}
