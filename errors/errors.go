package errors

import "fmt"

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrInvalidPayload = fmt.Errorf("invalid event payload")
	ErrEmptyWords     = fmt.Errorf("no words have been found")

	// Membership validation failures: the operation is refused and nothing changed
	ErrRoomNotFound      = fmt.Errorf("room not found")
	ErrUserNotInRoom     = fmt.Errorf("user not found in room")
	ErrUserAlreadyPlaced = fmt.Errorf("user is already present in another room")
	ErrSameRoom          = fmt.Errorf("source and destination rooms are identical")
	ErrMainRoomProtected = fmt.Errorf("main room cannot be deleted")
	ErrNotRoomCreator    = fmt.Errorf("requester is not the room creator")
	ErrUserNotStranded   = fmt.Errorf("user is not stranded")

	// Broken guarantees, worth alerting on
	ErrUserInLimbo     = fmt.Errorf("user could not be added to the destination room nor back to the source room")
	ErrInvariantBroken = fmt.Errorf("user is present in more than one room")

	ErrJournalCorrupted = fmt.Errorf("journal entry cannot be decoded")

	ErrUnknownCommand   = fmt.Errorf("unknown command")
	ErrInvalidArgument  = fmt.Errorf("invalid argument")
	ErrMissingArguments = fmt.Errorf("missing arguments")
)
