package repositories

import (
	"github.com/linskybing/reservation-go/db"
	"github.com/linskybing/reservation-go/models"
)

type RoomRepo interface {
	Create(room *models.Room) error
	GetByID(id uint) (models.Room, error)
	Update(room *models.Room) error
	Delete(id uint) error
	List() ([]models.Room, error)
}

type DBRoomRepo struct{}

func (r *DBRoomRepo) Create(room *models.Room) error {
	return db.DB.Create(room).Error
}

func (r *DBRoomRepo) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := db.DB.First(&room, "room_id = ?", id).Error
	return room, err
}

func (r *DBRoomRepo) Update(room *models.Room) error {
	return db.DB.Save(room).Error
}

func (r *DBRoomRepo) Delete(id uint) error {
	return db.DB.Delete(&models.Room{}, "room_id = ?", id).Error
}

func (r *DBRoomRepo) List() ([]models.Room, error) {
	var rooms []models.Room
	err := db.DB.Order("name ASC").Find(&rooms).Error
	return rooms, err
}
