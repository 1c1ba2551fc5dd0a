package models

import "time"

type UserRole string

const (
	UserRoleTeacher    UserRole = "teacher"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSupervisor UserRole = "supervisor"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id" json:"u_id"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	FullName  string    `gorm:"size:50;not null" json:"full_name"`
	Email     *string   `gorm:"size:100" json:"email,omitempty"`
	Role      UserRole  `gorm:"type:varchar(20);default:'teacher';not null" json:"role"`
	Status    string    `gorm:"type:varchar(20);default:'active';not null" json:"status"`
	ClassID   *uint     `gorm:"column:class_id" json:"class_id,omitempty"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
