package dto

type CreateEquipmentDTO struct {
	Name          string `json:"name" binding:"required"`
	Category      string `json:"category" binding:"required"`
	TotalQuantity int    `json:"total_quantity" binding:"required,min=1"`
}

type UpdateEquipmentDTO struct {
	Name          *string `json:"name,omitempty"`
	Category      *string `json:"category,omitempty"`
	TotalQuantity *int    `json:"total_quantity,omitempty" binding:"omitempty,min=0"`
}
