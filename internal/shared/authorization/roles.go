package authorization

type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleMechanic UserRole = "mechanic"
	RoleAdmin    UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleUser, RoleMechanic, RoleAdmin:
		return true
	}
	return false
}

// ParseUserRole returns the role named by s, falling back to RoleUser.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}

// Roles lists every valid role.
func Roles() []UserRole {
	return []UserRole{RoleUser, RoleMechanic, RoleAdmin}
}
