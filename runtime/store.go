package runtime

import (
	"room-lab/domain"
	"slices"
)

// RoomStore keeps rooms in creation order with an index by id.
// Both are always updated together. RoomStore is not safe for concurrent use,
// the Manager serializes every access.
type RoomStore struct {
	rooms []*domain.Room
	index map[domain.RoomID]*domain.Room
}

func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms: nil,
		index: make(map[domain.RoomID]*domain.Room),
	}
}

func (s *RoomStore) Get(id domain.RoomID) (*domain.Room, bool) {
	room, ok := s.index[id]
	return room, ok
}

// Append adds a room at the end of the creation order.
// It returns false if the id is already taken.
func (s *RoomStore) Append(room *domain.Room) bool {
	if _, exists := s.index[room.ID]; exists {
		return false
	}
	s.rooms = append(s.rooms, room)
	s.index[room.ID] = room
	return true
}

func (s *RoomStore) Remove(id domain.RoomID) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	s.rooms = slices.DeleteFunc(s.rooms, func(r *domain.Room) bool {
		return r.ID == id
	})
	return true
}

// All returns the rooms in creation order. The slice is a copy, the rooms are not.
func (s *RoomStore) All() []*domain.Room {
	return slices.Clone(s.rooms)
}

func (s *RoomStore) Len() int {
	return len(s.rooms)
}
