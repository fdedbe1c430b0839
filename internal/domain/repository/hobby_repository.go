package repository

import (
	"context"
	"errors"

	"hobbyexplorer/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHobbyNotFound is returned when no hobby matches the lookup.
var ErrHobbyNotFound = errors.New("hobby not found")

// HobbyRepository defines persistence operations for hobbies.
type HobbyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hobby, error)
	FindByName(ctx context.Context, name string) (*entity.Hobby, error)

	// FindByNames returns the hobbies whose name is in names, in no particular order.
	FindByNames(ctx context.Context, names []string) ([]*entity.Hobby, error)

	// Create persists a hobby. A name collision is reported as ErrHobbyAlreadyExists.
	Create(ctx context.Context, hobby *entity.Hobby) error

	// CreateBatch persists hobbies in one statement.
	CreateBatch(ctx context.Context, hobbies []*entity.Hobby) error

	// Delete removes the hobby and, through the cascading foreign key, its links.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListNotLinkedToUser returns hobbies the user has no link to, ordered by name.
	ListNotLinkedToUser(ctx context.Context, userID uuid.UUID, page Page) ([]*entity.Hobby, error)
}
