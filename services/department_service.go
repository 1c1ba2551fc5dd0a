package services

import (
	"errors"

	"github.com/linskybing/reservation-go/apperrors"
	"github.com/linskybing/reservation-go/dto"
	"github.com/linskybing/reservation-go/models"
	"github.com/linskybing/reservation-go/repositories"
	"gorm.io/gorm"
)

type DepartmentService struct {
	Repos *repositories.Repos
}

func NewDepartmentService(repos *repositories.Repos) *DepartmentService {
	return &DepartmentService{Repos: repos}
}

func (s *DepartmentService) Create(input dto.CreateDepartmentDTO) (models.Department, error) {
	d := models.Department{Name: input.Name}
	err := s.Repos.Department.Create(&d)
	return d, err
}

func (s *DepartmentService) Get(id uint) (models.Department, error) {
	d, err := s.Repos.Department.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Department{}, &apperrors.NotFoundError{Resource: "department", ID: id}
		}
		return models.Department{}, err
	}
	return d, nil
}

func (s *DepartmentService) List() ([]models.Department, error) {
	return s.Repos.Department.List()
}

func (s *DepartmentService) Update(id uint, input dto.UpdateDepartmentDTO) (models.Department, error) {
	d, err := s.Get(id)
	if err != nil {
		return models.Department{}, err
	}
	if input.Name != nil {
		d.Name = *input.Name
	}
	if err := s.Repos.Department.Update(&d); err != nil {
		return models.Department{}, err
	}
	return d, nil
}

func (s *DepartmentService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repos.Department.Delete(id)
}
