package dto

import "encoding/json"

// CreateRequestDTO is the submission payload for all three request
// types. Binding only enforces the envelope; per-type field rules live
// in the service so the client gets every problem back at once.
type CreateRequestDTO struct {
	Type      string          `json:"type" binding:"required,oneof=room equipment printing"`
	ClassID   uint            `json:"class_id" binding:"required"`
	Date      string          `json:"date" binding:"required"`
	StartTime *string         `json:"start_time,omitempty"`
	EndTime   *string         `json:"end_time,omitempty"`
	Notes     string          `json:"notes"`
	Signature json.RawMessage `json:"signature"`

	RoomID *uint `json:"room_id,omitempty"`

	EquipmentID *uint `json:"equipment_id,omitempty"`
	Quantity    *int  `json:"quantity,omitempty"`

	DocumentName *string `json:"document_name,omitempty"`
	DocumentKey  *string `json:"document_key,omitempty"`
	Pages        *int    `json:"pages,omitempty"`
	Copies       *int    `json:"copies,omitempty"`
	Color        *bool   `json:"color,omitempty"`
	Duplex       *bool   `json:"duplex,omitempty"`
}

type DecisionDTO struct {
	Notes string `json:"notes"`
}
