package services

import (
	"errors"

	"github.com/linskybing/reservation-go/apperrors"
	"github.com/linskybing/reservation-go/dto"
	"github.com/linskybing/reservation-go/models"
	"github.com/linskybing/reservation-go/repositories"
	"gorm.io/gorm"
)

// EquipmentService manages the equipment inventory and is the inventory
// adjuster of the approval flow: Reserve on final approval, Release on
// check-in.
type EquipmentService struct {
	Repos *repositories.Repos
}

func NewEquipmentService(repos *repositories.Repos) *EquipmentService {
	return &EquipmentService{Repos: repos}
}

func (s *EquipmentService) Create(input dto.CreateEquipmentDTO) (models.Equipment, error) {
	item := models.Equipment{
		Name:              input.Name,
		Category:          input.Category,
		TotalQuantity:     input.TotalQuantity,
		AvailableQuantity: input.TotalQuantity,
	}
	err := s.Repos.Equipment.Create(&item)
	return item, err
}

func (s *EquipmentService) Get(id uint) (models.Equipment, error) {
	item, err := s.Repos.Equipment.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Equipment{}, &apperrors.NotFoundError{Resource: "equipment", ID: id}
		}
		return models.Equipment{}, err
	}
	return item, nil
}

func (s *EquipmentService) List() ([]models.Equipment, error) {
	return s.Repos.Equipment.List()
}

// Update applies partial changes. Growing or shrinking the total moves
// the available counter by the same delta, clamped to [0, total], so
// outstanding reservations stay accounted for.
func (s *EquipmentService) Update(id uint, input dto.UpdateEquipmentDTO) (models.Equipment, error) {
	item, err := s.Get(id)
	if err != nil {
		return models.Equipment{}, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.TotalQuantity != nil {
		delta := *input.TotalQuantity - item.TotalQuantity
		item.TotalQuantity = *input.TotalQuantity
		item.AvailableQuantity += delta
		if item.AvailableQuantity < 0 {
			item.AvailableQuantity = 0
		}
		if item.AvailableQuantity > item.TotalQuantity {
			item.AvailableQuantity = item.TotalQuantity
		}
	}

	if err := s.Repos.Equipment.Update(&item); err != nil {
		return models.Equipment{}, err
	}
	return item, nil
}

func (s *EquipmentService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repos.Equipment.Delete(id)
}

// Reserve atomically checks and decrements the available counter.
// Returns false when stock is insufficient.
func (s *EquipmentService) Reserve(id uint, quantity int) (bool, error) {
	return s.Repos.Equipment.Reserve(id, quantity)
}

// Release gives stock back, clamped at the total so double releases
// cannot inflate the inventory.
func (s *EquipmentService) Release(id uint, quantity int) error {
	return s.Repos.Equipment.Release(id, quantity)
}
