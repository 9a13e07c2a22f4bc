package runtime

import (
	"fmt"
	"log/slog"
	"room-lab/contract"
	"room-lab/domain"
	"room-lab/domain/event"
	"room-lab/errors"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Manager owns the rooms and guarantees that a user is in at most one room.
//
// Every public operation holds the manager lock from start to end, so a transfer
// or a room deletion is never interleaved with another mutation.
// Notifications produced by an operation are delivered to the listeners
// after the lock is released and before the operation returns.
type Manager struct {
	mu       sync.RWMutex
	log      *slog.Logger
	store    contract.IRoomStore
	lastID   domain.RoomID
	stranded map[domain.UserID]event.UserStranded

	lmu          sync.RWMutex
	listeners    []subscription
	nextListener int
}

type subscription struct {
	id       int
	listener contract.Listener
}

// outbox collects the notifications of one operation, in emission order
type outbox []event.Event

func (o *outbox) add(t event.Type, payload event.DomainEvent) {
	*o = append(*o, event.New(t, payload))
}

// NewManager seeds the store with the main room.
// The store is expected to be empty.
func NewManager(log *slog.Logger, store contract.IRoomStore) *Manager {
	m := &Manager{
		log:      log,
		store:    store,
		stranded: make(map[domain.UserID]event.UserStranded),
	}
	m.CreateRoom(domain.SystemUser, domain.MainRoomName, domain.MainRoomColor)
	return m
}

// Subscribe registers a listener. The returned func removes it.
func (m *Manager) Subscribe(listener contract.Listener) func() {
	m.lmu.Lock()
	defer m.lmu.Unlock()
	m.nextListener++
	id := m.nextListener
	m.listeners = append(m.listeners, subscription{id: id, listener: listener})

	return func() {
		m.lmu.Lock()
		defer m.lmu.Unlock()
		m.listeners = slices.DeleteFunc(m.listeners, func(s subscription) bool {
			return s.id == id
		})
	}
}

func (m *Manager) notify(events outbox) {
	if len(events) == 0 {
		return
	}
	m.lmu.RLock()
	listeners := slices.Clone(m.listeners)
	m.lmu.RUnlock()

	for _, e := range events {
		for _, s := range listeners {
			s.listener.Notify(e)
		}
	}
}

// CreateRoom always succeeds and emits nothing.
func (m *Manager) CreateRoom(creatorID domain.UserID, name, backgroundColor string) domain.RoomID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	room := domain.NewRoom(m.lastID, creatorID, name, backgroundColor)
	if !m.store.Append(room) {
		// Ids are never reused, so this only happens with a pre-filled store
		m.log.Error("room id already taken", "room_id", room.ID)
	}
	m.log.Debug("room created", "room_id", room.ID, "creator_id", creatorID, "name", name)
	return room.ID
}

// FindCurrentRoom returns the room holding the user, or domain.NoRoom.
func (m *Manager) FindCurrentRoom(userID domain.UserID) domain.RoomID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.findCurrentRoom(userID)
}

// findCurrentRoom scans from the most recent room. Finding the user twice means
// the single-room guarantee is already broken: it is reported, never repaired here.
func (m *Manager) findCurrentRoom(userID domain.UserID) domain.RoomID {
	rooms := m.store.All()
	found := domain.NoRoom
	for i := len(rooms) - 1; i >= 0; i-- {
		if !rooms[i].Has(userID) {
			continue
		}
		if found != domain.NoRoom {
			m.log.Error(errors.ErrInvariantBroken.Error(),
				"user_id", userID, "room_id", found, "other_room_id", rooms[i].ID)
			continue
		}
		found = rooms[i].ID
	}
	return found
}

// AddUser places a user who is in no room yet.
func (m *Manager) AddUser(userID domain.UserID, roomID domain.RoomID) bool {
	return m.Add(userID, roomID) == nil
}

func (m *Manager) Add(userID domain.UserID, roomID domain.RoomID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addUser(userID, roomID, false)
}

// addUser appends the user to the room. Without force the user must be in no room.
// With force the placement check is skipped: callers use it to put back a user
// who is currently nowhere.
func (m *Manager) addUser(userID domain.UserID, roomID domain.RoomID, force bool) error {
	if !force {
		if current := m.findCurrentRoom(userID); current != domain.NoRoom {
			m.log.Warn("cannot add the user to a room",
				"user_id", userID, "room_id", roomID, "current_room_id", current, "error", errors.ErrUserAlreadyPlaced)
			return errors.ErrUserAlreadyPlaced
		}
	}

	room, ok := m.store.Get(roomID)
	if !ok {
		m.log.Warn("cannot add the user to this room", "user_id", userID, "room_id", roomID, "error", errors.ErrRoomNotFound)
		return errors.ErrRoomNotFound
	}
	if !room.Join(userID) {
		m.log.Error("user already inside the room", "user_id", userID, "room_id", roomID)
		return errors.ErrUserAlreadyPlaced
	}
	delete(m.stranded, userID)
	return nil
}

func (m *Manager) RemoveUser(userID domain.UserID, roomID domain.RoomID) bool {
	return m.Remove(userID, roomID) == nil
}

func (m *Manager) Remove(userID domain.UserID, roomID domain.RoomID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeUser(userID, roomID)
}

func (m *Manager) removeUser(userID domain.UserID, roomID domain.RoomID) error {
	room, ok := m.store.Get(roomID)
	if !ok {
		m.log.Warn("cannot remove the user from the room", "user_id", userID, "room_id", roomID, "error", errors.ErrRoomNotFound)
		return errors.ErrRoomNotFound
	}
	if !room.Leave(userID) {
		m.log.Warn("cannot remove the user from the room",
			"user_id", userID, "room_id", roomID, "users", room.Users(), "error", errors.ErrUserNotInRoom)
		return errors.ErrUserNotInRoom
	}
	return nil
}

// RemoveUserEverywhere is the hard-disconnect cleanup. Calling it for a user
// present nowhere does nothing.
func (m *Manager) RemoveUserEverywhere(userID domain.UserID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rooms := m.store.All()
	for i := len(rooms) - 1; i >= 0; i-- {
		if rooms[i].Leave(userID) {
			m.log.Debug("user removed", "user_id", userID, "room_id", rooms[i].ID)
		}
	}
	delete(m.stranded, userID)
}

func (m *Manager) TransferUser(userID domain.UserID, source, destination domain.RoomID) bool {
	return m.Transfer(userID, source, destination) == nil
}

// Transfer moves a user from source to destination, or leaves everything as it was.
// The only exception is a failed rollback: the user is then stranded, and
// errors.ErrUserInLimbo is returned.
func (m *Manager) Transfer(userID domain.UserID, source, destination domain.RoomID) error {
	var events outbox
	m.mu.Lock()
	err := m.transferUser(userID, source, destination, &events)
	m.mu.Unlock()

	m.notify(events)
	return err
}

func (m *Manager) transferUser(userID domain.UserID, source, destination domain.RoomID, events *outbox) error {
	if source == destination {
		return errors.ErrSameRoom
	}
	if _, ok := m.store.Get(destination); !ok {
		return errors.ErrRoomNotFound
	}
	if err := m.removeUser(userID, source); err != nil {
		return err
	}

	// The user is in no room at this point
	addErr := m.addUser(userID, destination, false)
	if addErr == nil {
		events.add(event.UserTransferredType, event.UserTransferred{
			User:        userID,
			Source:      source,
			Destination: destination,
		})
		return nil
	}

	if err := m.addUser(userID, source, true); err != nil {
		stranded := event.UserStranded{User: userID, Source: source, Destination: destination}
		m.stranded[userID] = stranded
		m.log.Error("*** user is now in limbo",
			"user_id", userID,
			"source_room", source,
			"destination_room", destination,
			"destination_error", addErr,
			"rollback_error", err,
		)
		events.add(event.UserStrandedType, stranded)
		return fmt.Errorf("%w: %w", errors.ErrUserInLimbo, err)
	}
	return addErr
}

func (m *Manager) MoveToRoom(userID domain.UserID, destination domain.RoomID) bool {
	return m.Move(userID, destination) == nil
}

// Move transfers the user from wherever they are. A user in no room
// cannot be moved: the source lookup gives domain.NoRoom, which is no room.
func (m *Manager) Move(userID domain.UserID, destination domain.RoomID) error {
	var events outbox
	m.mu.Lock()
	source := m.findCurrentRoom(userID)
	err := m.transferUser(userID, source, destination, &events)
	m.mu.Unlock()

	m.notify(events)
	return err
}

func (m *Manager) DeleteRoom(requesterID domain.UserID, roomID domain.RoomID) bool {
	return m.Delete(requesterID, roomID) == nil
}

// Delete removes a room created by the requester. Its occupants are moved
// to the main room, in join order, before the room disappears.
func (m *Manager) Delete(requesterID domain.UserID, roomID domain.RoomID) error {
	var events outbox
	m.mu.Lock()
	err := m.deleteRoom(requesterID, roomID, &events)
	m.mu.Unlock()

	if err != nil {
		m.log.Debug("room not deleted", "requester_id", requesterID, "room_id", roomID, "error", err)
	}
	m.notify(events)
	return err
}

func (m *Manager) deleteRoom(requesterID domain.UserID, roomID domain.RoomID, events *outbox) error {
	if roomID == domain.MainRoomID {
		return errors.ErrMainRoomProtected
	}
	room, ok := m.store.Get(roomID)
	if !ok {
		return errors.ErrRoomNotFound
	}
	if room.CreatorID != requesterID {
		return errors.ErrNotRoomCreator
	}

	for _, userID := range room.Users() {
		room.Leave(userID)
		if err := m.addUser(userID, domain.MainRoomID, true); err != nil {
			m.log.Error("evicted user not placed in main room", "user_id", userID, "room_id", roomID, "error", err)
		}
		events.add(event.UserForcedOutType, event.UserForcedOut{User: userID, Room: roomID})
	}

	m.store.Remove(roomID)
	events.add(event.RoomDeletedType, event.RoomDeleted{Room: roomID})
	return nil
}

// Rescue puts a stranded user in the main room.
func (m *Manager) Rescue(userID domain.UserID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.stranded[userID]; !ok {
		return errors.ErrUserNotStranded
	}
	if err := m.addUser(userID, domain.MainRoomID, false); err != nil {
		return err
	}
	m.log.Info("stranded user rescued", "user_id", userID, "room_id", domain.MainRoomID)
	return nil
}

func (m *Manager) RescueStranded(userID domain.UserID) bool {
	return m.Rescue(userID) == nil
}

func (m *Manager) GetRoomByID(id domain.RoomID) (domain.RoomView, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	room, ok := m.store.Get(id)
	if !ok {
		return domain.RoomView{}, false
	}
	return room.View(), true
}

func (m *Manager) RoomExists(id domain.RoomID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.store.Get(id)
	return ok
}

// FilterByUser returns the rooms created by the user, in creation order
func (m *Manager) FilterByUser(userID domain.UserID) []domain.RoomView {
	m.mu.RLock()
	defer m.mu.RUnlock()
	owned := lo.Filter(m.store.All(), func(r *domain.Room, _ int) bool {
		return r.CreatorID == userID
	})
	return lo.Map(owned, func(r *domain.Room, _ int) domain.RoomView {
		return r.View()
	})
}

func (m *Manager) Rooms() []domain.RoomView {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Map(m.store.All(), func(r *domain.Room, _ int) domain.RoomView {
		return r.View()
	})
}

// Stranded lists the users waiting for a rescue, sorted
func (m *Manager) Stranded() []domain.UserID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	users := lo.Keys(m.stranded)
	slices.Sort(users)
	return users
}

func (m *Manager) Occupancy() domain.Occupancy {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rooms := m.store.All()
	return domain.Occupancy{
		Rooms:     len(rooms),
		Occupants: lo.SumBy(rooms, func(r *domain.Room) int { return r.Len() }),
		Stranded:  len(m.stranded),
	}
}
