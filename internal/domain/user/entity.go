package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Full console access, manages users and letters
	RoleUser  Role = "user"  // Regular staff member
)

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	EmployeeID   *string
	Department   *string
	Designation  *string
	JoiningDate  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
