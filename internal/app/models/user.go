package models

import "time"

// Role defines the closed set of roles the platform knows about. Role
// checks happen once at session start; handlers only ever consult the
// resolved Capabilities flags.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
	RoleFaculty    Role = "faculty"
	RoleStudent    Role = "student"
	RoleStaff      Role = "staff"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleSuperAdmin, RoleFaculty, RoleStudent, RoleStaff:
		return true
	}
	return false
}

// User defines a platform account
type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt *time.Time `json:"created_at,omitempty"`

	Roles []UserRole `json:"roles,omitempty"`
}

// GetID returns the user identifier
func (u User) GetID() int64 { return u.ID }

// UserRole attaches a role to a user account
type UserRole struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	Role   Role  `json:"role"`
}

// GetID returns the role row identifier
func (r UserRole) GetID() int64 { return r.ID }

// Capabilities is the flag set resolved once from a user's role list.
type Capabilities struct {
	IsAdmin      bool `json:"is_admin"`
	IsSuperAdmin bool `json:"is_super_admin"`
	IsFaculty    bool `json:"is_faculty"`
	IsStudent    bool `json:"is_student"`
	IsStaff      bool `json:"is_staff"`
}

// ResolveCapabilities scans the role list exactly once and returns the
// derived flag set. Unknown role strings are ignored.
func ResolveCapabilities(roles []UserRole) Capabilities {
	var caps Capabilities
	for _, r := range roles {
		switch r.Role {
		case RoleAdmin:
			caps.IsAdmin = true
		case RoleSuperAdmin:
			caps.IsSuperAdmin = true
		case RoleFaculty:
			caps.IsFaculty = true
		case RoleStudent:
			caps.IsStudent = true
		case RoleStaff:
			caps.IsStaff = true
		}
	}
	return caps
}

// CanManageEntities reports whether the user may mutate the academic
// hierarchy (institutions through program-course links).
func (c Capabilities) CanManageEntities() bool {
	return c.IsAdmin || c.IsSuperAdmin
}

// CanTakeAttendance reports whether the user may run the attendance
// workflow for a class.
func (c Capabilities) CanTakeAttendance() bool {
	return c.IsFaculty || c.IsAdmin || c.IsSuperAdmin
}

// CanManageUsers reports whether the user may manage accounts and roles.
func (c Capabilities) CanManageUsers() bool {
	return c.IsSuperAdmin
}
