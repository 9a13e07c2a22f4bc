package event

import (
	"log/slog"
	"room-lab/errors"
)

// StrandedHandler raises an alert for each user left in no room.
// A stranded user means the single-room guarantee is broken for that user.
type StrandedHandler struct {
	log *slog.Logger
}

func NewStrandedHandler(log *slog.Logger) *StrandedHandler {
	return &StrandedHandler{log: log}
}

func (h *StrandedHandler) Handle(event Event) {
	switch event.Type {
	case UserStrandedType:
		payload, ok := event.Payload.(UserStranded)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.log.Error("ALERT user stranded outside of any room",
			"user_id", payload.User,
			"source_room", payload.Source,
			"destination_room", payload.Destination,
			"error", errors.ErrUserInLimbo,
		)
	}
}

// EvictionHandler traces room deletions and the users they pushed out
type EvictionHandler struct {
	log *slog.Logger
}

func NewEvictionHandler(log *slog.Logger) *EvictionHandler {
	return &EvictionHandler{log: log}
}

func (h *EvictionHandler) Handle(event Event) {
	switch event.Type {
	case UserForcedOutType:
		payload, ok := event.Payload.(UserForcedOut)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.log.Info("user forced out of deleted room", "user_id", payload.User, "room_id", payload.Room)
	case RoomDeletedType:
		payload, ok := event.Payload.(RoomDeleted)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.log.Info("room deleted", "room_id", payload.Room)
	}
}
