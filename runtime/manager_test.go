package runtime

import (
	"log/slog"
	"math/rand"
	"room-lab/contract"
	"room-lab/domain"
	"room-lab/domain/event"
	"room-lab/errors"
	"room-lab/mocks"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recorder keeps every notification in emission order
type recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recorder) Notify(e event.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) payloads() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]any, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Payload)
	}
	return out
}

func newTestManager(t *testing.T) (*Manager, *recorder) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	m := NewManager(log, NewRoomStore())
	rec := &recorder{}
	m.Subscribe(rec)
	return m, rec
}

// vanishingStore lets a room disappear after a number of lookups,
// to reproduce a destination or a source deleted in the middle of a transfer.
type vanishingStore struct {
	*RoomStore
	budget map[domain.RoomID]int
}

func (s *vanishingStore) Get(id domain.RoomID) (*domain.Room, bool) {
	if left, ok := s.budget[id]; ok {
		if left == 0 {
			return nil, false
		}
		s.budget[id] = left - 1
	}
	return s.RoomStore.Get(id)
}

// assertSinglePlacement checks that no user is in two rooms at once
func assertSinglePlacement(t *testing.T, m *Manager) {
	t.Helper()
	seen := make(map[domain.UserID]domain.RoomID)
	for _, room := range m.Rooms() {
		for _, u := range room.Users {
			other, exists := seen[u]
			require.Falsef(t, exists, "user %s in rooms %d and %d", u, other, room.ID)
			seen[u] = room.ID
		}
	}
}

func TestManager_New_SeedsMainRoom(t *testing.T) {
	req := require.New(t)
	m, _ := newTestManager(t)

	main, ok := m.GetRoomByID(domain.MainRoomID)
	req.True(ok)
	req.Equal(domain.SystemUser, main.CreatorID)
	req.Equal(domain.MainRoomName, main.Name)
	req.Equal(domain.MainRoomColor, main.BackgroundColor)
	req.Empty(main.Users)
	req.Len(m.Rooms(), 1)
}

func TestManager_Instances_AreIndependent(t *testing.T) {
	req := require.New(t)
	m1, _ := newTestManager(t)
	m2, _ := newTestManager(t)

	req.Equal(domain.RoomID(2), m1.CreateRoom("u1", "Lounge", "pink"))
	req.Equal(domain.RoomID(2), m2.CreateRoom("u1", "Lounge", "pink"))
	req.True(m1.AddUser("u2", 2))
	req.Equal(domain.NoRoom, m2.FindCurrentRoom("u2"))
}

func TestManager_CreateRoom_IdsAreNeverReused(t *testing.T) {
	req := require.New(t)
	m, rec := newTestManager(t)

	id2 := m.CreateRoom("u1", "A", "red")
	id3 := m.CreateRoom("u1", "A", "red")
	req.True(m.DeleteRoom("u1", id3))
	id4 := m.CreateRoom("u1", "", "")

	req.Equal([]domain.RoomID{2, 3, 4}, []domain.RoomID{id2, id3, id4})
	req.False(m.RoomExists(3))
	// Creating rooms emits nothing, deleting room 3 emits one notification
	req.Len(rec.events, 1)
}

func TestManager_ScenarioA_AddUser(t *testing.T) {
	req := require.New(t)
	m, _ := newTestManager(t)

	lounge := m.CreateRoom("U1", "Lounge", "orange")
	req.Equal(domain.RoomID(2), lounge)

	req.True(m.AddUser("U2", lounge))
	req.Equal(lounge, m.FindCurrentRoom("U2"))
}

func TestManager_AddUser_Refusals(t *testing.T) {
	req := require.New(t)
	m, rec := newTestManager(t)
	lounge := m.CreateRoom("U1", "Lounge", "orange")
	req.True(m.AddUser("U2", lounge))

	// Already placed somewhere
	req.ErrorIs(m.Add("U2", domain.MainRoomID), errors.ErrUserAlreadyPlaced)
	// Already placed in that very room
	req.ErrorIs(m.Add("U2", lounge), errors.ErrUserAlreadyPlaced)
	// Unknown room
	req.ErrorIs(m.Add("U3", 42), errors.ErrRoomNotFound)
	// Placement check comes before the room check
	req.ErrorIs(m.Add("U2", 42), errors.ErrUserAlreadyPlaced)

	req.Equal(lounge, m.FindCurrentRoom("U2"))
	req.Equal(domain.NoRoom, m.FindCurrentRoom("U3"))
	req.Empty(rec.events)
}

func TestManager_RemoveUser(t *testing.T) {
	req := require.New(t)
	m, _ := newTestManager(t)
	lounge := m.CreateRoom("U1", "Lounge", "orange")
	m.AddUser("U2", lounge)
	m.AddUser("U3", lounge)

	req.ErrorIs(m.Remove("U2", 42), errors.ErrRoomNotFound)
	req.ErrorIs(m.Remove("U2", domain.MainRoomID), errors.ErrUserNotInRoom)
	req.True(m.RemoveUser("U2", lounge))
	req.False(m.RemoveUser("U2", lounge))

	room, _ := m.GetRoomByID(lounge)
	req.Equal([]domain.UserID{"U3"}, room.Users)
	req.Equal(domain.NoRoom, m.FindCurrentRoom("U2"))
}

func TestManager_RemoveUserEverywhere_IsIdempotent(t *testing.T) {
	req := require.New(t)
	m, _ := newTestManager(t)
	lounge := m.CreateRoom("U1", "Lounge", "orange")
	m.AddUser("U2", lounge)
	m.AddUser("U3", domain.MainRoomID)

	m.RemoveUserEverywhere("U2")
	once := m.Rooms()
	m.RemoveUserEverywhere("U2")

	req.Equal(once, m.Rooms())
	req.Equal(domain.NoRoom, m.FindCurrentRoom("U2"))
	req.Equal(domain.MainRoomID, m.FindCurrentRoom("U3"))

	// Unknown user: no-op
	m.RemoveUserEverywhere("nobody")
	req.Equal(once, m.Rooms())
}

func TestManager_ScenarioB_Transfer(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockListener(ctrl)

	m, _ := newTestManager(t)
	lounge := m.CreateRoom("U1", "Lounge", "orange")
	req.True(m.AddUser("U2", lounge))
	m.Subscribe(listener)

	listener.EXPECT().
		Notify(gomock.Any()).
		Do(func(e event.Event) {
			req.Equal(event.UserTransferredType, e.Type)
			req.Equal(event.UserTransferred{User: "U2", Source: lounge, Destination: domain.MainRoomID}, e.Payload)
			// Delivered once the transfer is visible
			req.Equal(domain.MainRoomID, m.FindCurrentRoom("U2"))
		}).
		Times(1)

	req.True(m.TransferUser("U2", lounge, domain.MainRoomID))
	req.Equal(domain.MainRoomID, m.FindCurrentRoom("U2"))

	room, _ := m.GetRoomByID(lounge)
	req.Empty(room.Users)
}

func TestManager_Transfer_Refusals_LeaveStateUnchanged(t *testing.T) {
	req := require.New(t)
	m, rec := newTestManager(t)
	lounge := m.CreateRoom("U1", "Lounge", "orange")
	m.AddUser("U2", lounge)
	before := m.Rooms()

	req.ErrorIs(m.Transfer("U2", lounge, lounge), errors.ErrSameRoom)
	req.ErrorIs(m.Transfer("U2", lounge, 42), errors.ErrRoomNotFound)
	// Not in the claimed source
	req.ErrorIs(m.Transfer("U2", domain.MainRoomID, lounge), errors.ErrUserNotInRoom)
	// Unknown source
	req.ErrorIs(m.Transfer("U2", 42, domain.MainRoomID), errors.ErrRoomNotFound)

	req.Equal(before, m.Rooms())
	req.Empty(rec.events)
}

func TestManager_Transfer_RollbackWhenDestinationVanishes(t *testing.T) {
	req := require.New(t)
	store := &vanishingStore{RoomStore: NewRoomStore(), budget: make(map[domain.RoomID]int)}
	m := NewManager(logs.GetLoggerFromLevel(slog.LevelDebug), store)
	rec := &recorder{}
	m.Subscribe(rec)

	lounge := m.CreateRoom("U1", "Lounge", "orange")
	req.True(m.AddUser("U2", domain.MainRoomID))

	// Given the destination passes the existence check then disappears
	store.budget[lounge] = 1

	err := m.Transfer("U2", domain.MainRoomID, lounge)

	// Then the user is back in the source room and nothing is emitted
	req.ErrorIs(err, errors.ErrRoomNotFound)
	req.Equal(domain.MainRoomID, m.FindCurrentRoom("U2"))
	req.Empty(m.Stranded())
	req.Empty(rec.events)
}

func TestManager_Transfer_Limbo(t *testing.T) {
	req := require.New(t)
	store := &vanishingStore{RoomStore: NewRoomStore(), budget: make(map[domain.RoomID]int)}
	m := NewManager(logs.GetLoggerFromLevel(slog.LevelDebug), store)
	rec := &recorder{}
	m.Subscribe(rec)

	lounge := m.CreateRoom("U1", "Lounge", "orange")
	kitchen := m.CreateRoom("U1", "Kitchen", "white")
	req.True(m.AddUser("U2", lounge))

	// Given the destination vanishes after the existence check
	// And the source vanishes right after the user left it
	store.budget[kitchen] = 1
	store.budget[lounge] = 1

	err := m.Transfer("U2", lounge, kitchen)

	// Then the user is nowhere, quarantined, and reported
	req.ErrorIs(err, errors.ErrUserInLimbo)
	req.Equal(domain.NoRoom, m.FindCurrentRoom("U2"))
	req.Equal([]domain.UserID{"U2"}, m.Stranded())
	req.Equal([]any{event.UserStranded{User: "U2", Source: lounge, Destination: kitchen}}, rec.payloads())
	req.Equal(1, m.Occupancy().Stranded)

	// When the user is rescued
	req.True(m.RescueStranded("U2"))

	// Then the user lands in the main room and the quarantine is lifted
	req.Equal(domain.MainRoomID, m.FindCurrentRoom("U2"))
	req.Empty(m.Stranded())
	req.ErrorIs(m.Rescue("U2"), errors.ErrUserNotStranded)
}

func TestManager_Stranded_ClearedByCleanup(t *testing.T) {
	req := require.New(t)
	store := &vanishingStore{RoomStore: NewRoomStore(), budget: make(map[domain.RoomID]int)}
	m := NewManager(logs.GetLoggerFromLevel(slog.LevelDebug), store)
	lounge := m.CreateRoom("U1", "Lounge", "orange")
	kitchen := m.CreateRoom("U1", "Kitchen", "white")
	m.AddUser("U2", lounge)
	store.budget[kitchen] = 1
	store.budget[lounge] = 1
	req.Error(m.Transfer("U2", lounge, kitchen))
	req.Len(m.Stranded(), 1)

	m.RemoveUserEverywhere("U2")

	req.Empty(m.Stranded())
}

func TestManager_MoveToRoom(t *testing.T) {
	req := require.New(t)
	m, rec := newTestManager(t)
	lounge := m.CreateRoom("U1", "Lounge", "orange")

	// A user in no room cannot be moved
	req.False(m.MoveToRoom("U2", lounge))
	req.Equal(domain.NoRoom, m.FindCurrentRoom("U2"))

	m.AddUser("U2", domain.MainRoomID)
	req.True(m.MoveToRoom("U2", lounge))
	req.Equal(lounge, m.FindCurrentRoom("U2"))
	req.Equal([]any{event.UserTransferred{User: "U2", Source: domain.MainRoomID, Destination: lounge}}, rec.payloads())

	// Moving to the current room is a same-room transfer
	req.ErrorIs(m.Move("U2", lounge), errors.ErrSameRoom)
}

func TestManager_ScenarioC_DeleteRoomCascade(t *testing.T) {
	req := require.New(t)
	m, rec := newTestManager(t)
	lounge := m.CreateRoom("U1", "Lounge", "orange")
	req.True(m.AddUser("U3", lounge))

	req.True(m.DeleteRoom("U1", lounge))

	req.Equal(domain.MainRoomID, m.FindCurrentRoom("U3"))
	req.False(m.RoomExists(lounge))
	req.Equal([]any{
		event.UserForcedOut{User: "U3", Room: lounge},
		event.RoomDeleted{Room: lounge},
	}, rec.payloads())
}

func TestManager_DeleteRoom_EvictsInJoinOrder(t *testing.T) {
	req := require.New(t)
	m, rec := newTestManager(t)
	m.AddUser("U0", domain.MainRoomID)
	lounge := m.CreateRoom("U1", "Lounge", "orange")
	for _, u := range []domain.UserID{"U4", "U2", "U3"} {
		req.True(m.AddUser(u, lounge))
	}

	req.True(m.DeleteRoom("U1", lounge))

	main, _ := m.GetRoomByID(domain.MainRoomID)
	req.Equal([]domain.UserID{"U0", "U4", "U2", "U3"}, main.Users)
	req.Equal([]any{
		event.UserForcedOut{User: "U4", Room: lounge},
		event.UserForcedOut{User: "U2", Room: lounge},
		event.UserForcedOut{User: "U3", Room: lounge},
		event.RoomDeleted{Room: lounge},
	}, rec.payloads())
	_, found := m.GetRoomByID(lounge)
	req.False(found)
	assertSinglePlacement(t, m)
}

func TestManager_ScenarioD_DeleteRoomByStranger(t *testing.T) {
	req := require.New(t)
	m, rec := newTestManager(t)
	lounge := m.CreateRoom("U1", "Lounge", "orange")
	m.AddUser("U2", lounge)

	req.False(m.DeleteRoom("U2", lounge))
	req.ErrorIs(m.Delete("U2", lounge), errors.ErrNotRoomCreator)
	req.True(m.RoomExists(lounge))
	req.Equal(lounge, m.FindCurrentRoom("U2"))
	req.Empty(rec.events)
}

func TestManager_DeleteRoom_MainRoomIsProtected(t *testing.T) {
	req := require.New(t)
	m, rec := newTestManager(t)

	for _, requester := range []domain.UserID{domain.SystemUser, "U1", ""} {
		req.ErrorIs(m.Delete(requester, domain.MainRoomID), errors.ErrMainRoomProtected)
	}
	req.ErrorIs(m.Delete("U1", 42), errors.ErrRoomNotFound)
	req.True(m.RoomExists(domain.MainRoomID))
	req.Empty(rec.events)
}

func TestManager_FilterByUser(t *testing.T) {
	req := require.New(t)
	m, _ := newTestManager(t)
	a := m.CreateRoom("U1", "A", "red")
	m.CreateRoom("U2", "B", "blue")
	c := m.CreateRoom("U1", "C", "green")

	owned := m.FilterByUser("U1")
	req.Len(owned, 2)
	req.Equal(a, owned[0].ID)
	req.Equal(c, owned[1].ID)
	req.Empty(m.FilterByUser("U9"))
	req.Len(m.FilterByUser(domain.SystemUser), 1)
}

func TestManager_GetRoomByID_ReturnsSnapshot(t *testing.T) {
	req := require.New(t)
	m, _ := newTestManager(t)
	m.AddUser("U2", domain.MainRoomID)

	view, ok := m.GetRoomByID(domain.MainRoomID)
	req.True(ok)
	view.Users[0] = "mallory"

	req.Equal(domain.MainRoomID, m.FindCurrentRoom("U2"))
	req.Equal(domain.NoRoom, m.FindCurrentRoom("mallory"))
}

func TestManager_Subscribe_Unsubscribe(t *testing.T) {
	req := require.New(t)
	m, _ := newTestManager(t)
	lounge := m.CreateRoom("U1", "Lounge", "orange")
	m.AddUser("U2", lounge)

	calls := 0
	unsubscribe := m.Subscribe(contract.ListenerFunc(func(e event.Event) { calls++ }))
	req.True(m.MoveToRoom("U2", domain.MainRoomID))
	unsubscribe()
	req.True(m.MoveToRoom("U2", lounge))

	req.Equal(1, calls)
}

func TestManager_Listener_CanCallBack(t *testing.T) {
	req := require.New(t)
	m, _ := newTestManager(t)
	lounge := m.CreateRoom("U1", "Lounge", "orange")
	m.AddUser("U2", lounge)

	// A listener reacting to a deletion by reading the manager must not deadlock
	var occupancy domain.Occupancy
	m.Subscribe(contract.ListenerFunc(func(e event.Event) {
		if e.Type == event.RoomDeletedType {
			occupancy = m.Occupancy()
		}
	}))

	req.True(m.DeleteRoom("U1", lounge))
	req.Equal(domain.Occupancy{Rooms: 1, Occupants: 1}, occupancy)
}

func TestManager_FindCurrentRoom_ReportsBrokenInvariant(t *testing.T) {
	req := require.New(t)
	store := NewRoomStore()
	m := NewManager(logs.GetLoggerFromLevel(slog.LevelDebug), store)
	lounge := m.CreateRoom("U1", "Lounge", "orange")

	// Given a user placed twice behind the manager's back
	main, _ := store.Get(domain.MainRoomID)
	room, _ := store.Get(lounge)
	main.Join("U2")
	room.Join("U2")

	// Then the most recent room still wins
	req.Equal(lounge, m.FindCurrentRoom("U2"))
}

func TestManager_SinglePlacement_RandomOperations(t *testing.T) {
	m, _ := newTestManager(t)
	rnd := rand.New(rand.NewSource(42))
	users := []domain.UserID{"a", "b", "c", "d", "e", "f"}
	creators := []domain.UserID{"a", "b", "z"}

	for i := 0; i < 2000; i++ {
		user := users[rnd.Intn(len(users))]
		room := domain.RoomID(rnd.Intn(8) + 1)
		switch rnd.Intn(8) {
		case 0:
			m.CreateRoom(creators[rnd.Intn(len(creators))], "r", "c")
		case 1:
			m.AddUser(user, room)
		case 2:
			m.RemoveUser(user, room)
		case 3:
			m.TransferUser(user, domain.RoomID(rnd.Intn(8)+1), room)
		case 4:
			m.MoveToRoom(user, room)
		case 5:
			m.DeleteRoom(creators[rnd.Intn(len(creators))], room)
		case 6:
			m.RemoveUserEverywhere(user)
		case 7:
			m.DeleteRoom(domain.SystemUser, domain.MainRoomID)
		}
		assertSinglePlacement(t, m)
		require.True(t, m.RoomExists(domain.MainRoomID))
	}
}

func TestManager_ConcurrentMoves_KeepSinglePlacement(t *testing.T) {
	req := require.New(t)
	m, _ := newTestManager(t)
	rooms := []domain.RoomID{domain.MainRoomID}
	for i := 0; i < 4; i++ {
		rooms = append(rooms, m.CreateRoom("owner", "r", "c"))
	}
	users := []domain.UserID{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, u := range users {
		req.True(m.AddUser(u, domain.MainRoomID))
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed))
			for i := 0; i < 300; i++ {
				m.MoveToRoom(users[rnd.Intn(len(users))], rooms[rnd.Intn(len(rooms))])
			}
		}(int64(w))
	}
	wg.Wait()

	assertSinglePlacement(t, m)
	req.Equal(len(users), m.Occupancy().Occupants)
}
