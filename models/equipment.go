package models

import "time"

type Equipment struct {
	EID               uint      `gorm:"primaryKey;column:e_id" json:"e_id"`
	Name              string    `gorm:"size:50;not null;unique" json:"name"`
	Category          string    `gorm:"size:50;not null" json:"category"`
	TotalQuantity     int       `gorm:"not null" json:"total_quantity"`
	AvailableQuantity int       `gorm:"not null" json:"available_quantity"`
	CreatedAt         time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt         time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
