package auth

import "errors"

// Role is the access level carried in the token's role claim. Tokens are
// issued by the auth collaborator; this service only verifies them.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

var (
	ErrInvalidToken         = errors.New("invalid or missing token")
	ErrAdminOrHRRequired    = errors.New("admin or hr access required")
	ErrManagementRequired   = errors.New("management access required")
)

// CanManagePayroll reports whether the role may run salary computation,
// payment and employee administration.
func CanManagePayroll(role Role) bool {
	return role == RoleAdmin || role == RoleHR
}

// CanViewReports covers the read-only report and dashboard screens.
func CanViewReports(role Role) bool {
	return role == RoleAdmin || role == RoleHR || role == RoleManager
}
