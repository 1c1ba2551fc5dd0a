package repositories

import (
	"github.com/linskybing/reservation-go/db"
	"github.com/linskybing/reservation-go/models"
)

type DepartmentRepo interface {
	Create(d *models.Department) error
	GetByID(id uint) (models.Department, error)
	Update(d *models.Department) error
	Delete(id uint) error
	List() ([]models.Department, error)
}

type DBDepartmentRepo struct{}

func (r *DBDepartmentRepo) Create(d *models.Department) error {
	return db.DB.Create(d).Error
}

func (r *DBDepartmentRepo) GetByID(id uint) (models.Department, error) {
	var d models.Department
	err := db.DB.First(&d, "d_id = ?", id).Error
	return d, err
}

func (r *DBDepartmentRepo) Update(d *models.Department) error {
	return db.DB.Save(d).Error
}

func (r *DBDepartmentRepo) Delete(id uint) error {
	return db.DB.Delete(&models.Department{}, "d_id = ?", id).Error
}

func (r *DBDepartmentRepo) List() ([]models.Department, error) {
	var items []models.Department
	err := db.DB.Order("name ASC").Find(&items).Error
	return items, err
}
