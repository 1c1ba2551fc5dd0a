package services

import (
	"errors"
	"time"

	"github.com/linskybing/reservation-go/apperrors"
	"github.com/linskybing/reservation-go/dto"
	"github.com/linskybing/reservation-go/models"
	"github.com/linskybing/reservation-go/repositories"
	"gorm.io/gorm"
)

type RoomService struct {
	Repos *repositories.Repos
}

func NewRoomService(repos *repositories.Repos) *RoomService {
	return &RoomService{Repos: repos}
}

func (s *RoomService) Create(input dto.CreateRoomDTO) (models.Room, error) {
	room := models.Room{
		Name:      input.Name,
		Type:      models.RoomType(input.Type),
		Capacity:  input.Capacity,
		Available: true,
	}
	err := s.Repos.Room.Create(&room)
	return room, err
}

func (s *RoomService) Get(id uint) (models.Room, error) {
	room, err := s.Repos.Room.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, &apperrors.NotFoundError{Resource: "room", ID: id}
		}
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) List() ([]models.Room, error) {
	return s.Repos.Room.List()
}

func (s *RoomService) Update(id uint, input dto.UpdateRoomDTO) (models.Room, error) {
	room, err := s.Get(id)
	if err != nil {
		return models.Room{}, err
	}

	if input.Name != nil {
		room.Name = *input.Name
	}
	if input.Type != nil {
		room.Type = models.RoomType(*input.Type)
	}
	if input.Capacity != nil {
		room.Capacity = *input.Capacity
	}
	if input.Available != nil {
		room.Available = *input.Available
	}

	if err := s.Repos.Room.Update(&room); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repos.Room.Delete(id)
}

// CheckAvailability reports whether the room can be booked for the
// given window. Overlap detection against existing reservations is not
// implemented; any open room reports available.
func (s *RoomService) CheckAvailability(id uint, _ time.Time, _, _ *string) (bool, error) {
	room, err := s.Get(id)
	if err != nil {
		return false, err
	}
	return room.Available, nil
}
