package models

import "time"

type RoomType string

const (
	RoomTypeClassroom  RoomType = "classroom"
	RoomTypeLab        RoomType = "lab"
	RoomTypeMeeting    RoomType = "meeting"
	RoomTypeAuditorium RoomType = "auditorium"
)

type Room struct {
	RoomID    uint      `gorm:"primaryKey;column:room_id" json:"room_id"`
	Name      string    `gorm:"size:50;not null;unique" json:"name"`
	Type      RoomType  `gorm:"type:varchar(20);not null" json:"type"`
	Capacity  int       `gorm:"default:0" json:"capacity"`
	Available bool      `gorm:"default:true;not null" json:"available"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
