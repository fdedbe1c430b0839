package repository

import (
	"context"
	"errors"

	"hobbyexplorer/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserHobbyNotFound is returned when the (user, hobby) pair has no link.
var ErrUserHobbyNotFound = errors.New("user hobby link not found")

// UserHobbyRepository defines persistence operations for user-hobby links.
type UserHobbyRepository interface {
	Find(ctx context.Context, userID, hobbyID uuid.UUID) (*entity.UserHobby, error)

	// Create persists a link. An existing pair is reported as ErrUserHobbyAlreadyExists,
	// a missing parent as ErrUserNotFound or ErrHobbyNotFound from the domain errors package.
	Create(ctx context.Context, link *entity.UserHobby) error

	// Update overwrites interested and rating of an existing link.
	Update(ctx context.Context, link *entity.UserHobby) error

	Delete(ctx context.Context, userID, hobbyID uuid.UUID) error

	// ListHobbiesByUser returns the hobbies linked to the user in link insertion order.
	// The window is offset based, so concurrent inserts may shift results between pages.
	ListHobbiesByUser(ctx context.Context, userID uuid.UUID, page Page) ([]*entity.Hobby, error)
}
