package event

import (
	"room-lab/domain"
	"time"
)

type Type string

const (
	UserTransferredType Type = "USER_TRANSFERRED"
	UserForcedOutType   Type = "USER_FORCED_OUT_OF_DELETED_ROOM"
	RoomDeletedType     Type = "ROOM_DELETED"
	UserStrandedType    Type = "USER_STRANDED"
)

// Event is the envelope delivered to listeners, sinks and handlers
type Event struct {
	Type    Type
	Payload any
	At      time.Time
}

func New(t Type, payload any) Event {
	return Event{Type: t, Payload: payload, At: time.Now().UTC()}
}

// DomainEvent is implemented by every membership payload
type DomainEvent interface {
	RoomID() domain.RoomID
}

// UserTransferred is emitted only when a transfer committed
type UserTransferred struct {
	User        domain.UserID
	Source      domain.RoomID
	Destination domain.RoomID
}

func (u UserTransferred) RoomID() domain.RoomID {
	return u.Destination
}

// UserForcedOut is emitted once per occupant of a deleted room,
// after the occupant has been placed in the main room.
type UserForcedOut struct {
	User domain.UserID
	Room domain.RoomID
}

func (u UserForcedOut) RoomID() domain.RoomID {
	return u.Room
}

type RoomDeleted struct {
	Room domain.RoomID
}

func (r RoomDeleted) RoomID() domain.RoomID {
	return r.Room
}

// UserStranded reports a user that belongs to no room after a failed rollback
type UserStranded struct {
	User        domain.UserID
	Source      domain.RoomID
	Destination domain.RoomID
}

func (u UserStranded) RoomID() domain.RoomID {
	return u.Source
}
