package models

import "time"

type Class struct {
	CID          uint        `gorm:"primaryKey;column:c_id" json:"c_id"`
	Name         string      `gorm:"size:50;not null" json:"name"`
	Grade        int         `gorm:"default:0" json:"grade"`
	DepartmentID uint        `gorm:"column:d_id;not null" json:"d_id"`
	Department   *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	CreatedAt    time.Time   `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt    time.Time   `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
