package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reporta si el rol es uno de los conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User representa un usuario del sistema. Nunca se elimina físicamente:
// la baja es siempre IsActive=false.
type User struct {
	ID           string
	Username     string // único
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, user
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
