package dto

type CreateRoomDTO struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=classroom lab meeting auditorium"`
	Capacity int    `json:"capacity" binding:"omitempty,min=0"`
}

type UpdateRoomDTO struct {
	Name      *string `json:"name,omitempty"`
	Type      *string `json:"type,omitempty" binding:"omitempty,oneof=classroom lab meeting auditorium"`
	Capacity  *int    `json:"capacity,omitempty"`
	Available *bool   `json:"available,omitempty"`
}
