package usecase

import (
	"context"

	"hobbyexplorer/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateHobbyInput defines the data required to create a hobby.
type CreateHobbyInput struct {
	Name        string
	Description *string
}

// ImportResult reports how a bulk import went.
type ImportResult struct {
	Created int
	Skipped int
}

// HobbyUsecase defines the interface for hobby-related business operations.
type HobbyUsecase interface {
	CreateHobby(ctx context.Context, input *CreateHobbyInput) (*entity.Hobby, error)
	GetHobby(ctx context.Context, id uuid.UUID) (*entity.Hobby, error)
	GetHobbyByName(ctx context.Context, name string) (*entity.Hobby, error)
	DeleteHobby(ctx context.Context, id uuid.UUID) error

	// ImportHobbies creates the given hobbies in a single transaction. Names that
	// already exist, or repeat earlier in the input, are skipped.
	ImportHobbies(ctx context.Context, inputs []CreateHobbyInput) (*ImportResult, error)
}
