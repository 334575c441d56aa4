package domain

// Role is resolved by the identity provider and arrives in the access token.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLibrarian Role = "librarian"
	RoleStudent   Role = "student"
)

// Staff reports whether the role may see loans beyond its own.
func (r Role) Staff() bool {
	return r == RoleAdmin || r == RoleLibrarian
}
