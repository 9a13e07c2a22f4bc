//go:generate go run go.uber.org/mock/mockgen -source=journal_repository.go -destination=../../mocks/mock_journal_repository.go -package=mocks
package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	roomerrors "room-lab/errors"
	"room-lab/infrastructure/codec"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	journalPrefix   = "journal:"
	userIndexPrefix = "idx:user:"
)

// JournalEntry is one membership notification as written on disk.
// Rooms that do not apply to the kind of entry are zero.
type JournalEntry struct {
	ID          string `cbor:"id"`
	Type        string `cbor:"type"`
	User        string `cbor:"user,omitempty"`
	Room        int    `cbor:"room,omitempty"`
	Source      int    `cbor:"source,omitempty"`
	Destination int    `cbor:"destination,omitempty"`
	AtNano      int64  `cbor:"at"`
}

func (e JournalEntry) At() time.Time {
	return time.Unix(0, e.AtNano).UTC()
}

type IJournalRepository interface {
	Append(entry JournalEntry) error
	List(limit int) ([]JournalEntry, error)
	Latest(limit int) ([]JournalEntry, error)
	ForUser(user string, limit int) ([]JournalEntry, error)
}

// JournalRepository is an append-only audit log of membership notifications in BadgerDB.
// Keys sort chronologically: journal:<zero padded unix nano>:<id>.
// Entries about a user are also reachable through idx:user:<user>:<unix nano>:<id>.
type JournalRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewJournalRepository(db *badger.DB, log *slog.Logger) *JournalRepository {
	return &JournalRepository{db: db, log: log}
}

func journalKey(e JournalEntry) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", journalPrefix, e.AtNano, e.ID))
}

func userIndexKey(e JournalEntry) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d:%s", userIndexPrefix, e.User, e.AtNano, e.ID))
}

// Append stores the entry and its user index in one transaction.
// A missing ID or timestamp is filled in.
func (r *JournalRepository) Append(entry JournalEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.AtNano == 0 {
		entry.AtNano = time.Now().UnixNano()
	}

	data, err := codec.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal journal entry: %w", err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := journalKey(entry)
		if err := txn.Set(key, data); err != nil {
			return err
		}
		if entry.User == "" {
			return nil
		}
		return txn.Set(userIndexKey(entry), key)
	})
}

// List returns the oldest entries first
func (r *JournalRepository) List(limit int) ([]JournalEntry, error) {
	return r.scan(limit, false)
}

// Latest returns the most recent entries first
func (r *JournalRepository) Latest(limit int) ([]JournalEntry, error) {
	return r.scan(limit, true)
}

func (r *JournalRepository) scan(limit int, reverse bool) ([]JournalEntry, error) {
	var entries []JournalEntry
	prefix := []byte(journalPrefix)

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = reverse
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		// In reverse mode, seeking the prefix followed by 0xFF lands on the last key of the prefix
		seek := prefix
		if reverse {
			seek = append(append([]byte{}, prefix...), 0xFF)
		}

		for it.Seek(seek); it.ValidForPrefix(prefix) && (limit <= 0 || len(entries) < limit); it.Next() {
			entry, err := decodeItem(it.Item())
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during journal scan: %w", err)
	}
	return entries, nil
}

// ForUser returns the entries about one user, oldest first
func (r *JournalRepository) ForUser(user string, limit int) ([]JournalEntry, error) {
	var entries []JournalEntry
	prefix := []byte(fmt.Sprintf("%s%s:", userIndexPrefix, user))

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix) && (limit <= 0 || len(entries) < limit); it.Next() {
			key, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			item, err := txn.Get(key)
			if errors.Is(err, badger.ErrKeyNotFound) {
				r.log.Warn("dangling journal index", "index", string(it.Item().Key()))
				continue
			}
			if err != nil {
				return err
			}
			entry, err := decodeItem(item)
			if err != nil {
				return err
			}
			// Another user whose id starts with "<user>:" shares the prefix
			if entry.User != user {
				continue
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during journal lookup for user %s: %w", user, err)
	}
	return entries, nil
}

func decodeItem(item *badger.Item) (JournalEntry, error) {
	var entry JournalEntry
	err := item.Value(func(v []byte) error {
		if err := codec.Unmarshal(v, &entry); err != nil {
			return fmt.Errorf("%w: key %s: %w", roomerrors.ErrJournalCorrupted, item.Key(), err)
		}
		return nil
	})
	return entry, err
}

// DecodeEntry decodes a raw journal value, for tools reading the database directly
func DecodeEntry(val []byte) (JournalEntry, error) {
	var entry JournalEntry
	if err := codec.Unmarshal(val, &entry); err != nil {
		return JournalEntry{}, fmt.Errorf("%w: %w", roomerrors.ErrJournalCorrupted, err)
	}
	return entry, nil
}
