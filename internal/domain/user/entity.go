package user

import "time"

// Roles.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
)

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
