package constants

// Role is the access level attached to a user account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Roles lists every valid Role value.
func Roles() []string {
	return []string{string(RoleAdmin), string(RoleUser)}
}
