package dto

type CreateUserInput struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required,min=6"`
	FullName string  `json:"full_name" binding:"required"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=teacher admin supervisor"`
	ClassID  *uint   `json:"class_id,omitempty"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserInput struct {
	Password    *string `json:"password,omitempty"`
	OldPassword *string `json:"old_password,omitempty"`
	FullName    *string `json:"full_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Role        *string `json:"role,omitempty" binding:"omitempty,oneof=teacher admin supervisor"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=active disabled"`
	ClassID     *uint   `json:"class_id,omitempty"`
}
