package repositories

import (
	"github.com/linskybing/reservation-go/db"
	"github.com/linskybing/reservation-go/models"
)

type UserRepo interface {
	Create(user *models.User) error
	GetByID(id uint) (models.User, error)
	GetByUsername(username string) (models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List() ([]models.User, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) Create(user *models.User) error {
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) GetByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, "u_id = ?", id).Error
	return user, err
}

func (r *DBUserRepo) GetByUsername(username string) (models.User, error) {
	var user models.User
	err := db.DB.Where("username = ?", username).First(&user).Error
	return user, err
}

func (r *DBUserRepo) Update(user *models.User) error {
	return db.DB.Save(user).Error
}

func (r *DBUserRepo) Delete(id uint) error {
	return db.DB.Delete(&models.User{}, "u_id = ?", id).Error
}

func (r *DBUserRepo) List() ([]models.User, error) {
	var users []models.User
	err := db.DB.Order("u_id ASC").Find(&users).Error
	return users, err
}
