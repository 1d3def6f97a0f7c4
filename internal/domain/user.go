package domain

// Role represents the role of a user
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid returns true if the role is known
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the identity provided by the user service
type User struct {
	ID       int64
	Name     string
	Email    string
	Role     Role
	IsActive bool
}

// Caller is the authenticated identity performing an operation
type Caller struct {
	UserID int64
	Role   Role
}

// IsAdmin returns true if the caller has the admin role
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CallerFromUser builds a Caller from a resolved user
func CallerFromUser(u *User) Caller {
	return Caller{UserID: u.ID, Role: u.Role}
}
