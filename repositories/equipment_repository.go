package repositories

import (
	"github.com/linskybing/reservation-go/db"
	"github.com/linskybing/reservation-go/models"
	"gorm.io/gorm"
)

type EquipmentRepo interface {
	Create(e *models.Equipment) error
	GetByID(id uint) (models.Equipment, error)
	Update(e *models.Equipment) error
	Delete(id uint) error
	List() ([]models.Equipment, error)
	// Reserve decrements available_quantity only when enough stock
	// remains; the check and the write are one statement so two final
	// approvals against the same equipment cannot oversell.
	Reserve(id uint, quantity int) (bool, error)
	// Release increments available_quantity, clamped at
	// total_quantity to guard against double release.
	Release(id uint, quantity int) error
}

type DBEquipmentRepo struct{}

func (r *DBEquipmentRepo) Create(e *models.Equipment) error {
	return db.DB.Create(e).Error
}

func (r *DBEquipmentRepo) GetByID(id uint) (models.Equipment, error) {
	var e models.Equipment
	err := db.DB.First(&e, "e_id = ?", id).Error
	return e, err
}

func (r *DBEquipmentRepo) Update(e *models.Equipment) error {
	return db.DB.Save(e).Error
}

func (r *DBEquipmentRepo) Delete(id uint) error {
	return db.DB.Delete(&models.Equipment{}, "e_id = ?", id).Error
}

func (r *DBEquipmentRepo) List() ([]models.Equipment, error) {
	var items []models.Equipment
	err := db.DB.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *DBEquipmentRepo) Reserve(id uint, quantity int) (bool, error) {
	res := db.DB.Model(&models.Equipment{}).
		Where("e_id = ? AND available_quantity >= ?", id, quantity).
		UpdateColumn("available_quantity", gorm.Expr("available_quantity - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DBEquipmentRepo) Release(id uint, quantity int) error {
	return db.DB.Model(&models.Equipment{}).
		Where("e_id = ?", id).
		UpdateColumn("available_quantity",
			gorm.Expr("LEAST(available_quantity + ?, total_quantity)", quantity)).Error
}
