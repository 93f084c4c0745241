package dto

// UpdateUserRoleRequest cambio de rol (solo admin).
type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}

// UpdateUserStatusRequest activación/desactivación (solo admin). Puntero para
// distinguir "false" de campo ausente.
type UpdateUserStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}
