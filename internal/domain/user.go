package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// SessionUser is the password-free view of a user held as the active session.
type SessionUser struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	DateOfBirth  Date      `json:"dateOfBirth"`
	ProfilePhoto string    `json:"profilePhoto"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *SessionUser) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// StoredUser is the record kept in the users collection.
type StoredUser struct {
	SessionUser
	Password string `json:"password"`
}

// Strip drops the password. It is the only way to build a session from a stored record.
func (u StoredUser) Strip() SessionUser {
	return u.SessionUser
}
