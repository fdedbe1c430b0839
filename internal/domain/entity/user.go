// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/google/uuid"
)

// User is a person tracked by the system. Username and Email are unique across users.
type User struct {
	ID           uuid.UUID // Generated on creation, never changes.
	Username     string    // Unique login handle.
	Email        *string   // Optional contact email, unique when present.
	Name         string    // Display name.
	PasswordHash string    // bcrypt hash of the password. Never leaves the service boundary.
}

// HasEmail reports whether the user carries a non-null email.
func (u *User) HasEmail() bool {
	return u.Email != nil
}

// HasEmailEqualTo reports whether the user's email is exactly email.
func (u *User) HasEmailEqualTo(email string) bool {
	return u.Email != nil && *u.Email == email
}
