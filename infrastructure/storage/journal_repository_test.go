package storage

import (
	"log/slog"
	"testing"

	"room-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// SetupTestDB initializes a temporary Badger instance for testing
func SetupTestDB(t *testing.T) (*badger.DB, func()) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	return db, func() {
		db.Close()
	}
}

func TestJournalRepository_AppendAndList(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewJournalRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug))

	entries := []JournalEntry{
		{Type: "USER_TRANSFERRED", User: "bob", Source: 2, Destination: 1, AtNano: 300},
		{Type: "ROOM_DELETED", Room: 2, AtNano: 100},
		{Type: "USER_FORCED_OUT_OF_DELETED_ROOM", User: "bob", Room: 2, AtNano: 200},
	}
	for _, e := range entries {
		req.NoError(repo.Append(e))
	}

	// Oldest first, whatever the insertion order
	list, err := repo.List(0)
	req.NoError(err)
	req.Len(list, 3)
	req.Equal([]int64{100, 200, 300}, []int64{list[0].AtNano, list[1].AtNano, list[2].AtNano})
	req.NotEmpty(list[0].ID)
	req.Equal(2, list[0].Room)
	req.Equal("bob", list[2].User)
	req.Equal(1, list[2].Destination)

	// Limit applies
	limited, err := repo.List(2)
	req.NoError(err)
	req.Len(limited, 2)
}

func TestJournalRepository_Latest(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewJournalRepository(db, slog.Default())

	for _, at := range []int64{10, 30, 20, 40} {
		req.NoError(repo.Append(JournalEntry{Type: "ROOM_DELETED", Room: int(at), AtNano: at}))
	}

	latest, err := repo.Latest(2)
	req.NoError(err)
	req.Len(latest, 2)
	req.Equal(int64(40), latest[0].AtNano)
	req.Equal(int64(30), latest[1].AtNano)
}

func TestJournalRepository_ForUser(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewJournalRepository(db, slog.Default())

	req.NoError(repo.Append(JournalEntry{Type: "USER_TRANSFERRED", User: "bob", Source: 1, Destination: 2, AtNano: 1}))
	req.NoError(repo.Append(JournalEntry{Type: "USER_TRANSFERRED", User: "bob:2", Source: 1, Destination: 3, AtNano: 2}))
	req.NoError(repo.Append(JournalEntry{Type: "USER_TRANSFERRED", User: "alice", Source: 1, Destination: 2, AtNano: 3}))
	req.NoError(repo.Append(JournalEntry{Type: "USER_FORCED_OUT_OF_DELETED_ROOM", User: "bob", Room: 2, AtNano: 4}))
	req.NoError(repo.Append(JournalEntry{Type: "ROOM_DELETED", Room: 2, AtNano: 5}))

	bob, err := repo.ForUser("bob", 0)
	req.NoError(err)
	req.Len(bob, 2)
	req.Equal("USER_TRANSFERRED", bob[0].Type)
	req.Equal("USER_FORCED_OUT_OF_DELETED_ROOM", bob[1].Type)

	nobody, err := repo.ForUser("nobody", 0)
	req.NoError(err)
	req.Empty(nobody)
}

func TestJournalRepository_CorruptedEntry(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewJournalRepository(db, slog.Default())

	req.NoError(db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("journal:00000000000000000001:broken"), []byte{0xff, 0x00})
	}))

	_, err := repo.List(0)
	req.ErrorIs(err, errors.ErrJournalCorrupted)

	_, err = DecodeEntry([]byte{0xff})
	req.ErrorIs(err, errors.ErrJournalCorrupted)
}
