package request

import "hobbyexplorer/internal/usecase"

// CreateUserRequest is the signup payload.
type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,max=255"`
	Name     string  `json:"name" validate:"required,max=255"`
	Email    *string `json:"email" validate:"omitempty,max=255"`
	Password string  `json:"password" validate:"required,min=8,max=40"`
}

// ToInput maps the payload to the use case input.
func (r *CreateUserRequest) ToInput() *usecase.CreateUserInput {
	return &usecase.CreateUserInput{
		Username: r.Username,
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// UpdateUserRequest is a partial update. Only email may be cleared with null.
type UpdateUserRequest struct {
	Username Field[string] `json:"username" validate:"omitnil,min=1,max=255"`
	Name     Field[string] `json:"name" validate:"omitnil,min=1,max=255"`
	Email    Field[string] `json:"email" validate:"omitnil,max=255"`
	Password Field[string] `json:"password" validate:"omitnil,min=8,max=40"`
}

// NullFields implements NullChecker.
func (r *UpdateUserRequest) NullFields() []string {
	var names []string
	if r.Username.Null {
		names = append(names, "username")
	}
	if r.Name.Null {
		names = append(names, "name")
	}
	if r.Password.Null {
		names = append(names, "password")
	}

	return names
}

// ToInput maps the payload to the use case input.
func (r *UpdateUserRequest) ToInput() *usecase.UpdateUserInput {
	return &usecase.UpdateUserInput{
		Username: r.Username.Ptr(),
		Name:     r.Name.Ptr(),
		Email:    r.Email.Optional(),
		Password: r.Password.Ptr(),
	}
}

// LoginRequest carries credentials for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ToInput maps the payload to the use case input.
func (r *LoginRequest) ToInput() *usecase.LoginInput {
	return &usecase.LoginInput{
		Username: r.Username,
		Password: r.Password,
	}
}
