package users

import "time"

type Role string

const (
	RoleMember Role = "member"
	RoleVet    Role = "vet"
	RoleAdmin  Role = "admin"
)

func ValidRole(r Role) bool {
	return r == RoleMember || r == RoleVet || r == RoleAdmin
}

type User struct {
	ID    string
	Name  string
	Email string
	City  string
	Role  Role

	CreatedAt time.Time
	UpdatedAt time.Time
}
