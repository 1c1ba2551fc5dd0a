package dto

type CreateDepartmentDTO struct {
	Name string `json:"name" binding:"required"`
}

type UpdateDepartmentDTO struct {
	Name *string `json:"name,omitempty"`
}

type CreateClassDTO struct {
	Name         string `json:"name" binding:"required"`
	Grade        int    `json:"grade" binding:"omitempty,min=0"`
	DepartmentID uint   `json:"d_id" binding:"required"`
}

type UpdateClassDTO struct {
	Name         *string `json:"name,omitempty"`
	Grade        *int    `json:"grade,omitempty"`
	DepartmentID *uint   `json:"d_id,omitempty"`
}
