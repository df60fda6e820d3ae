package rbac

const (
	PermissionCreateCustomer = "customer:create"
	PermissionDeleteCustomer = "customer:delete"
	PermissionUpdateSection  = "section:update"
	PermissionReadProgress   = "progress:read"
)

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

var rolePermissions = map[string][]string{
	RoleEmployee: {
		PermissionReadProgress,
		PermissionUpdateSection,
	},
	RoleAdmin: {
		PermissionReadProgress,
		PermissionUpdateSection,
		PermissionCreateCustomer,
		PermissionDeleteCustomer,
	},
}

// HasPermission checks whether the role grants the given permission.
func HasPermission(role, permission string) bool {
	permissions, ok := rolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
