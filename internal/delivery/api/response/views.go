package response

import (
	"hobbyexplorer/internal/domain/entity"

	"github.com/google/uuid"
)

// UserPublic is the user projection returned to clients; it never carries the password hash.
type UserPublic struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    *string   `json:"email"`
	Name     string    `json:"name"`
}

// HobbyPublic is the hobby projection returned to clients.
type HobbyPublic struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
}

// UserHobbyPublic is the link projection returned to clients.
type UserHobbyPublic struct {
	UserID     uuid.UUID `json:"user_id"`
	HobbyID    uuid.UUID `json:"hobby_id"`
	Interested bool      `json:"interested"`
	Rating     *int      `json:"rating"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	ExpiresIn   int64      `json:"expires_in"` // seconds
	User        UserPublic `json:"user"`
}

func NewUserPublic(user *entity.User) UserPublic {
	return UserPublic{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
	}
}

func NewHobbyPublic(hobby *entity.Hobby) HobbyPublic {
	return HobbyPublic{
		ID:          hobby.ID,
		Name:        hobby.Name,
		Description: hobby.Description,
	}
}

// NewHobbyPublicList never returns nil so empty pages encode as [].
func NewHobbyPublicList(hobbies []*entity.Hobby) []HobbyPublic {
	views := make([]HobbyPublic, 0, len(hobbies))
	for _, hobby := range hobbies {
		views = append(views, NewHobbyPublic(hobby))
	}

	return views
}

func NewUserHobbyPublic(link *entity.UserHobby) UserHobbyPublic {
	return UserHobbyPublic{
		UserID:     link.UserID,
		HobbyID:    link.HobbyID,
		Interested: link.Interested,
		Rating:     link.Rating,
	}
}
