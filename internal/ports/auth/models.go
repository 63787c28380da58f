package auth

// Roles carried in verified claims. They mirror users.Role; the duplication
// keeps the auth port free of domain imports.
const (
	RoleMember = "member"
	RoleVet    = "vet"
	RoleAdmin  = "admin"
)

// Claims is the information extracted from a verified token.
type Claims struct {
	UserID string
	Email  string
	Role   string
}
