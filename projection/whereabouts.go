// Package projection builds local read models from observed membership events.
// Handles ordering and per-user history.
// Does not emit events or touch the manager.
package projection

import (
	"context"
	"room-lab/domain"
	"room-lab/domain/event"
	"sync"
	"time"
)

type Reason string

const (
	Transferred Reason = "transferred"
	Evicted     Reason = "evicted"
	Stranded    Reason = "stranded"
)

// Placement is one step of a user's history. Room is domain.NoRoom when
// the user was left in no room.
type Placement struct {
	Room   domain.RoomID
	From   domain.RoomID
	Reason Reason
	At     time.Time
}

// Whereabouts keeps, for every user, the placements seen in notifications.
// Only moves are notified: a plain add or remove leaves no trace here.
type Whereabouts struct {
	mu      sync.RWMutex
	history map[domain.UserID][]Placement
	deleted []domain.RoomID
}

func NewWhereabouts() *Whereabouts {
	return &Whereabouts{history: make(map[domain.UserID][]Placement)}
}

func (w *Whereabouts) Name() string {
	return "whereabouts"
}

func (w *Whereabouts) Consume(_ context.Context, e event.Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch evt := e.Payload.(type) {
	case event.UserTransferred:
		w.append(evt.User, Placement{Room: evt.Destination, From: evt.Source, Reason: Transferred, At: e.At})
	case event.UserForcedOut:
		w.append(evt.User, Placement{Room: domain.MainRoomID, From: evt.Room, Reason: Evicted, At: e.At})
	case event.UserStranded:
		w.append(evt.User, Placement{Room: domain.NoRoom, From: evt.Source, Reason: Stranded, At: e.At})
	case event.RoomDeleted:
		w.deleted = append(w.deleted, evt.Room)
	}
	return nil
}

func (w *Whereabouts) append(user domain.UserID, p Placement) {
	w.history[user] = append(w.history[user], p)
}

// History returns a copy of the placements of a user, oldest first
func (w *Whereabouts) History(user domain.UserID) []Placement {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]Placement(nil), w.history[user]...)
}

// Last returns the latest known placement of a user
func (w *Whereabouts) Last(user domain.UserID) (Placement, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	h := w.history[user]
	if len(h) == 0 {
		return Placement{}, false
	}
	return h[len(h)-1], true
}

func (w *Whereabouts) DeletedRooms() []domain.RoomID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]domain.RoomID(nil), w.deleted...)
}
