package services

import (
	"errors"

	"github.com/linskybing/reservation-go/apperrors"
	"github.com/linskybing/reservation-go/dto"
	"github.com/linskybing/reservation-go/models"
	"github.com/linskybing/reservation-go/repositories"
	"gorm.io/gorm"
)

type ClassService struct {
	Repos *repositories.Repos
}

func NewClassService(repos *repositories.Repos) *ClassService {
	return &ClassService{Repos: repos}
}

func (s *ClassService) Create(input dto.CreateClassDTO) (models.Class, error) {
	if _, err := s.Repos.Department.GetByID(input.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Class{}, &apperrors.NotFoundError{Resource: "department", ID: input.DepartmentID}
		}
		return models.Class{}, err
	}
	c := models.Class{
		Name:         input.Name,
		Grade:        input.Grade,
		DepartmentID: input.DepartmentID,
	}
	err := s.Repos.Class.Create(&c)
	return c, err
}

func (s *ClassService) Get(id uint) (models.Class, error) {
	c, err := s.Repos.Class.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Class{}, &apperrors.NotFoundError{Resource: "class", ID: id}
		}
		return models.Class{}, err
	}
	return c, nil
}

func (s *ClassService) List() ([]models.Class, error) {
	return s.Repos.Class.List()
}

func (s *ClassService) ListByDepartment(departmentID uint) ([]models.Class, error) {
	return s.Repos.Class.ListByDepartment(departmentID)
}

func (s *ClassService) Update(id uint, input dto.UpdateClassDTO) (models.Class, error) {
	c, err := s.Get(id)
	if err != nil {
		return models.Class{}, err
	}
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Grade != nil {
		c.Grade = *input.Grade
	}
	if input.DepartmentID != nil {
		if _, err := s.Repos.Department.GetByID(*input.DepartmentID); err != nil {
			return models.Class{}, &apperrors.NotFoundError{Resource: "department", ID: *input.DepartmentID}
		}
		c.DepartmentID = *input.DepartmentID
	}
	if err := s.Repos.Class.Update(&c); err != nil {
		return models.Class{}, err
	}
	return c, nil
}

func (s *ClassService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repos.Class.Delete(id)
}
