package request

import (
	"hobbyexplorer/internal/usecase"

	"github.com/google/uuid"
)

// CreateHobbyRequest is the payload for POST /hobbies.
type CreateHobbyRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
}

// ToInput maps the payload to the use case input.
func (r *CreateHobbyRequest) ToInput() *usecase.CreateHobbyInput {
	return &usecase.CreateHobbyInput{
		Name:        r.Name,
		Description: r.Description,
	}
}

// CreateUserHobbyRequest links a hobby to the user in the path.
type CreateUserHobbyRequest struct {
	HobbyID    uuid.UUID `json:"hobby_id" validate:"required"`
	Interested *bool     `json:"interested"`
	Rating     *int      `json:"rating"`
}

// ToInput maps the payload to the use case input.
func (r *CreateUserHobbyRequest) ToInput() *usecase.CreateUserHobbyInput {
	return &usecase.CreateUserHobbyInput{
		HobbyID:    r.HobbyID,
		Interested: r.Interested,
		Rating:     r.Rating,
	}
}

// UpdateUserHobbyRequest is a partial update of a link. Rating may be cleared
// with null, interested may not.
type UpdateUserHobbyRequest struct {
	Interested Field[bool] `json:"interested"`
	Rating     Field[int]  `json:"rating"`
}

// NullFields implements NullChecker.
func (r *UpdateUserHobbyRequest) NullFields() []string {
	if r.Interested.Null {
		return []string{"interested"}
	}

	return nil
}

// ToInput maps the payload to the use case input.
func (r *UpdateUserHobbyRequest) ToInput() *usecase.UpdateUserHobbyInput {
	return &usecase.UpdateUserHobbyInput{
		Interested: r.Interested.Ptr(),
		Rating:     r.Rating.Optional(),
	}
}
