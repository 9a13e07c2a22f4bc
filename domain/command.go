package domain

// Commands are what the outside world asks of the membership manager.
// Field tags are checked by the service layer before anything is dispatched.

type CreateRoomCommand struct {
	CreatorID       UserID `validate:"required,max=64"`
	Name            string `validate:"max=64"`
	BackgroundColor string `validate:"max=32"`
}

type AddUserCommand struct {
	UserID UserID `validate:"required,max=64"`
	RoomID RoomID `validate:"required,gte=1"`
}

type RemoveUserCommand struct {
	UserID UserID `validate:"required,max=64"`
	// RoomID is optional: zero removes the user from every room
	RoomID RoomID `validate:"gte=0"`
}

type TransferUserCommand struct {
	UserID      UserID `validate:"required,max=64"`
	Source      RoomID `validate:"required,gte=1"`
	Destination RoomID `validate:"required,gte=1"`
}

type MoveUserCommand struct {
	UserID      UserID `validate:"required,max=64"`
	Destination RoomID `validate:"required,gte=1"`
}

type DeleteRoomCommand struct {
	RequesterID UserID `validate:"required,max=64"`
	RoomID      RoomID `validate:"required,gte=1"`
}
