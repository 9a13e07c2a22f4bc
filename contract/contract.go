//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"room-lab/domain"
	"room-lab/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink consumes notifications outside of the manager call path
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// Listener receives notifications synchronously, before the manager call returns.
// It must not block.
type Listener interface {
	Notify(e event.Event)
}

// ListenerFunc adapts a plain function to a Listener
type ListenerFunc func(e event.Event)

func (f ListenerFunc) Notify(e event.Event) {
	f(e)
}

// IRoomStore holds the rooms of one manager, in creation order
type IRoomStore interface {
	Get(id domain.RoomID) (*domain.Room, bool)
	Append(room *domain.Room) bool
	Remove(id domain.RoomID) bool
	All() []*domain.Room
	Len() int
}

type IManager interface {
	CreateRoom(creatorID domain.UserID, name, backgroundColor string) domain.RoomID
	FindCurrentRoom(userID domain.UserID) domain.RoomID
	Add(userID domain.UserID, roomID domain.RoomID) error
	Remove(userID domain.UserID, roomID domain.RoomID) error
	RemoveUserEverywhere(userID domain.UserID)
	Transfer(userID domain.UserID, source, destination domain.RoomID) error
	Move(userID domain.UserID, destination domain.RoomID) error
	Delete(requesterID domain.UserID, roomID domain.RoomID) error
	Rescue(userID domain.UserID) error
	GetRoomByID(id domain.RoomID) (domain.RoomView, bool)
	RoomExists(id domain.RoomID) bool
	FilterByUser(userID domain.UserID) []domain.RoomView
	Rooms() []domain.RoomView
	Stranded() []domain.UserID
	Occupancy() domain.Occupancy
	Subscribe(listener Listener) (unsubscribe func())
}
