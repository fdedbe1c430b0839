// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"hobbyexplorer/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. A username or email collision is reported as
	// ErrUsernameTaken / ErrEmailTaken from the domain errors package.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites every mutable column of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user. Link rows go with it through the cascading foreign key.
	Delete(ctx context.Context, id uuid.UUID) error
}
