package repositories

import (
	"github.com/linskybing/reservation-go/db"
	"github.com/linskybing/reservation-go/models"
)

type ClassRepo interface {
	Create(c *models.Class) error
	GetByID(id uint) (models.Class, error)
	Update(c *models.Class) error
	Delete(id uint) error
	List() ([]models.Class, error)
	ListByDepartment(departmentID uint) ([]models.Class, error)
}

type DBClassRepo struct{}

func (r *DBClassRepo) Create(c *models.Class) error {
	return db.DB.Create(c).Error
}

func (r *DBClassRepo) GetByID(id uint) (models.Class, error) {
	var c models.Class
	err := db.DB.Preload("Department").First(&c, "c_id = ?", id).Error
	return c, err
}

func (r *DBClassRepo) Update(c *models.Class) error {
	return db.DB.Save(c).Error
}

func (r *DBClassRepo) Delete(id uint) error {
	return db.DB.Delete(&models.Class{}, "c_id = ?", id).Error
}

func (r *DBClassRepo) List() ([]models.Class, error) {
	var items []models.Class
	err := db.DB.Preload("Department").Order("name ASC").Find(&items).Error
	return items, err
}

func (r *DBClassRepo) ListByDepartment(departmentID uint) ([]models.Class, error) {
	var items []models.Class
	err := db.DB.Where("d_id = ?", departmentID).Order("name ASC").Find(&items).Error
	return items, err
}
