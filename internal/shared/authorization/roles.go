package authorization

type UserRole string

const (
	RoleEmployee   UserRole = "employee"
	RoleManager    UserRole = "manager"
	RoleAdmin      UserRole = "admin"
	RoleSuperadmin UserRole = "superadmin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role carries administrator privileges.
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

func (r UserRole) IsManager() bool {
	return r == RoleManager
}

// AutoApprovesTickets reports whether tickets filed by this role skip the
// pending-approval state. Employees always start pending.
func (r UserRole) AutoApprovesTickets() bool {
	switch r {
	case RoleManager, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleEmployee
}

type OwnedResource interface {
	GetOwnerID() uint
}

func CanAccessResource(userID uint, userRole UserRole, resource OwnedResource) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resource.GetOwnerID()
}

func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
