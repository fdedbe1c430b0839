package usecase

import (
	"context"

	"hobbyexplorer/internal/domain/entity"

	"github.com/google/uuid"
)

// PageInput is an offset/limit window. A nil Limit selects the configured default;
// limits above the configured maximum are capped to it.
type PageInput struct {
	Offset int
	Limit  *int
}

// CreateUserHobbyInput links a hobby to a user. Interested defaults to true.
type CreateUserHobbyInput struct {
	HobbyID    uuid.UUID
	Interested *bool
	Rating     *int
}

// UpdateUserHobbyInput carries a partial update of a link; Rating may be set to null.
type UpdateUserHobbyInput struct {
	Interested *bool
	Rating     Optional[int]
}

// UserHobbyUsecase defines the operations on the links between users and hobbies.
type UserHobbyUsecase interface {
	AddHobby(ctx context.Context, userID uuid.UUID, input *CreateUserHobbyInput) (*entity.UserHobby, error)
	GetUserHobby(ctx context.Context, userID, hobbyID uuid.UUID) (*entity.UserHobby, error)

	// ListUserHobbies returns the user's hobbies in the order they were linked.
	ListUserHobbies(ctx context.Context, userID uuid.UUID, page PageInput) ([]*entity.Hobby, error)

	// SuggestHobbies returns hobbies the user is not linked to yet, ordered by name.
	SuggestHobbies(ctx context.Context, userID uuid.UUID, page PageInput) ([]*entity.Hobby, error)

	UpdateUserHobby(ctx context.Context, userID, hobbyID uuid.UUID, input *UpdateUserHobbyInput) (*entity.UserHobby, error)
	RemoveHobby(ctx context.Context, userID, hobbyID uuid.UUID) error
}
