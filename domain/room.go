package domain

import "github.com/samber/lo"

type RoomID int

type UserID string

const (
	// MainRoomID is the permanent room created with every manager
	MainRoomID RoomID = 1
	// NoRoom is returned when a user is not placed anywhere
	NoRoom RoomID = -1

	SystemUser      UserID = "--system--"
	MainRoomName           = "Welcome hall"
	MainRoomColor          = "lightblue"
)

// Room is a named container of users.
// Users are kept in join order and never twice.
type Room struct {
	ID              RoomID
	CreatorID       UserID
	Name            string
	BackgroundColor string
	users           []UserID
}

func NewRoom(id RoomID, creatorID UserID, name, backgroundColor string) *Room {
	return &Room{
		ID:              id,
		CreatorID:       creatorID,
		Name:            name,
		BackgroundColor: backgroundColor,
		users:           nil,
	}
}

func (r *Room) Has(userID UserID) bool {
	return lo.Contains(r.users, userID)
}

// Join appends the user at the end of the room.
// It returns false when the user is already inside.
func (r *Room) Join(userID UserID) bool {
	if r.Has(userID) {
		return false
	}
	r.users = append(r.users, userID)
	return true
}

// Leave removes the user, keeping the join order of the others.
func (r *Room) Leave(userID UserID) bool {
	idx := lo.IndexOf(r.users, userID)
	if idx == -1 {
		return false
	}
	r.users = append(r.users[:idx], r.users[idx+1:]...)
	return true
}

// Users returns a copy of the occupants in join order
func (r *Room) Users() []UserID {
	return append([]UserID(nil), r.users...)
}

func (r *Room) Len() int {
	return len(r.users)
}

func (r *Room) IsMain() bool {
	return r.ID == MainRoomID
}

// View detaches a read-only copy of the room from the manager.
func (r *Room) View() RoomView {
	return RoomView{
		ID:              r.ID,
		CreatorID:       r.CreatorID,
		Name:            r.Name,
		BackgroundColor: r.BackgroundColor,
		Users:           r.Users(),
	}
}

// RoomView is what leaves the manager. Mutating it has no effect on the room.
type RoomView struct {
	ID              RoomID
	CreatorID       UserID
	Name            string
	BackgroundColor string
	Users           []UserID
}
