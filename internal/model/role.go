package model

import "fmt"

// Role is the closed set of account roles.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Permission names a capability a role may hold.
type Permission string

const (
	PermissionManageOwnMedicines Permission = "medicines:manage_own"
	PermissionListAllMedicines   Permission = "medicines:list_all"
)

var rolePermissions = map[Role][]Permission{
	RolePatient: {PermissionManageOwnMedicines},
	RoleDoctor:  {PermissionManageOwnMedicines, PermissionListAllMedicines},
	RoleAdmin:   {PermissionManageOwnMedicines, PermissionListAllMedicines},
}

// ParseRole validates a role string coming from the API boundary.
// An empty string defaults to patient.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RolePatient, nil
	case RolePatient, RoleDoctor, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Can reports whether the role holds the given permission.
func (r Role) Can(p Permission) bool {
	for _, held := range rolePermissions[r] {
		if held == p {
			return true
		}
	}
	return false
}
