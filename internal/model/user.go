package model

import "time"

// User represents an account in the system
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Phone        *string   `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasEmail reports whether the user can receive email reminders.
func (u *User) HasEmail() bool {
	return u.Email != ""
}

// HasPhone reports whether the user can receive SMS reminders.
func (u *User) HasPhone() bool {
	return u.Phone != nil && *u.Phone != ""
}
