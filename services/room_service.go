package services

import (
	"fmt"
	"log/slog"
	"room-lab/contract"
	"room-lab/domain"
	roomerrors "room-lab/errors"

	"github.com/go-playground/validator/v10"
)

type ICensor interface {
	Censor(original string) (string, []string)
}

// RoomService is the entry point of the outside world into the membership manager.
// Every command is validated before being dispatched, room names are censored.
type RoomService struct {
	log       *slog.Logger
	manager   contract.IManager
	censor    ICensor
	validator *validator.Validate
}

func NewRoomService(log *slog.Logger, manager contract.IManager, censor ICensor) *RoomService {
	return &RoomService{
		log:       log,
		manager:   manager,
		censor:    censor,
		validator: validator.New(),
	}
}

func (s *RoomService) validate(cmd any) error {
	if err := s.validator.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %w", roomerrors.ErrInvalidArgument, err)
	}
	return nil
}

func (s *RoomService) CreateRoom(cmd domain.CreateRoomCommand) (domain.RoomID, error) {
	if err := s.validate(cmd); err != nil {
		return domain.NoRoom, err
	}
	name, words := s.censor.Censor(cmd.Name)
	if len(words) > 0 {
		s.log.Info("Room name censored", "creator", cmd.CreatorID, "words", len(words))
	}
	return s.manager.CreateRoom(cmd.CreatorID, name, cmd.BackgroundColor), nil
}

func (s *RoomService) AddUser(cmd domain.AddUserCommand) error {
	if err := s.validate(cmd); err != nil {
		return err
	}
	return s.manager.Add(cmd.UserID, cmd.RoomID)
}

// RemoveUser removes the user from the given room, or from every room when none is given
func (s *RoomService) RemoveUser(cmd domain.RemoveUserCommand) error {
	if err := s.validate(cmd); err != nil {
		return err
	}
	if cmd.RoomID == 0 {
		s.manager.RemoveUserEverywhere(cmd.UserID)
		return nil
	}
	return s.manager.Remove(cmd.UserID, cmd.RoomID)
}

func (s *RoomService) TransferUser(cmd domain.TransferUserCommand) error {
	if err := s.validate(cmd); err != nil {
		return err
	}
	return s.manager.Transfer(cmd.UserID, cmd.Source, cmd.Destination)
}

func (s *RoomService) MoveUser(cmd domain.MoveUserCommand) error {
	if err := s.validate(cmd); err != nil {
		return err
	}
	return s.manager.Move(cmd.UserID, cmd.Destination)
}

func (s *RoomService) DeleteRoom(cmd domain.DeleteRoomCommand) error {
	if err := s.validate(cmd); err != nil {
		return err
	}
	return s.manager.Delete(cmd.RequesterID, cmd.RoomID)
}

func (s *RoomService) Rescue(userID domain.UserID) error {
	if userID == "" {
		return roomerrors.ErrMissingArguments
	}
	return s.manager.Rescue(userID)
}

func (s *RoomService) WhereIs(userID domain.UserID) (domain.RoomView, bool) {
	id := s.manager.FindCurrentRoom(userID)
	if id == domain.NoRoom {
		return domain.RoomView{}, false
	}
	return s.manager.GetRoomByID(id)
}

// CreatedBy lists the rooms whose creator is the given user, in creation order
func (s *RoomService) CreatedBy(userID domain.UserID) []domain.RoomView {
	return s.manager.FilterByUser(userID)
}

func (s *RoomService) Rooms() []domain.RoomView {
	return s.manager.Rooms()
}

func (s *RoomService) Stranded() []domain.UserID {
	return s.manager.Stranded()
}
