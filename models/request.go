package models

import (
	"time"

	"gorm.io/datatypes"
)

type RequestType string

const (
	RequestTypeRoom      RequestType = "room"
	RequestTypeEquipment RequestType = "equipment"
	RequestTypePrinting  RequestType = "printing"
)

type RequestStatus string

const (
	RequestStatusPending       RequestStatus = "pending"
	RequestStatusAdminApproved RequestStatus = "admin_approved"
	RequestStatusApproved      RequestStatus = "approved"
	RequestStatusRejected      RequestStatus = "rejected"
	// RequestStatusReturned marks approved equipment that has been
	// checked back in. Room and printing requests never enter it.
	RequestStatusReturned RequestStatus = "returned"
)

// Approval is one stage's decision record. Timestamp doubles as the
// presence marker: a nil timestamp means the stage never acted.
type Approval struct {
	UserID    uint       `gorm:"column:user_id" json:"user_id,omitempty"`
	UserName  string     `gorm:"column:user_name;size:50" json:"user_name,omitempty"`
	Timestamp *time.Time `gorm:"column:timestamp" json:"timestamp,omitempty"`
	Notes     string     `gorm:"column:notes;type:text" json:"notes,omitempty"`
}

func (a Approval) Present() bool {
	return a.Timestamp != nil
}

type Request struct {
	RID    uint          `gorm:"primaryKey;column:r_id" json:"r_id"`
	RefNo  string        `gorm:"size:36;not null;uniqueIndex" json:"ref_no"`
	Type   RequestType   `gorm:"type:varchar(20);not null" json:"type"`
	Status RequestStatus `gorm:"type:varchar(20);default:'pending';not null;index" json:"status"`

	UserID   uint   `gorm:"not null;index" json:"user_id"`
	UserName string `gorm:"size:50;not null" json:"user_name"`

	ClassID   uint   `gorm:"not null" json:"class_id"`
	ClassName string `gorm:"size:50;not null" json:"class_name"`

	Date      time.Time `gorm:"type:date;not null" json:"date"`
	StartTime *string   `gorm:"size:5" json:"start_time,omitempty"`
	EndTime   *string   `gorm:"size:5" json:"end_time,omitempty"`

	Notes     string         `gorm:"type:text" json:"notes"`
	Signature datatypes.JSON `gorm:"type:jsonb" json:"signature"`

	// room payload
	RoomID   *uint   `gorm:"column:room_id" json:"room_id,omitempty"`
	RoomName *string `gorm:"size:50" json:"room_name,omitempty"`

	// equipment payload
	EquipmentID   *uint   `gorm:"column:equipment_id" json:"equipment_id,omitempty"`
	EquipmentName *string `gorm:"size:50" json:"equipment_name,omitempty"`
	Quantity      *int    `json:"quantity,omitempty"`

	// printing payload
	DocumentName *string `gorm:"size:200" json:"document_name,omitempty"`
	DocumentKey  *string `gorm:"size:200" json:"document_key,omitempty"`
	Pages        *int    `json:"pages,omitempty"`
	Copies       *int    `json:"copies,omitempty"`
	Color        *bool   `json:"color,omitempty"`
	Duplex       *bool   `json:"duplex,omitempty"`

	AdminApproval      Approval `gorm:"embedded;embeddedPrefix:admin_" json:"admin_approval"`
	SupervisorApproval Approval `gorm:"embedded;embeddedPrefix:supervisor_" json:"supervisor_approval"`

	// Version is bumped on every status transition; writers compare
	// it so concurrent approvals cannot both land.
	Version   uint      `gorm:"default:0;not null" json:"version"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// Terminal reports whether no further transition can leave the status.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusRejected || s == RequestStatusReturned
}
