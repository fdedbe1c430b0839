package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultInterested is the interest flag of a link created without one.
const DefaultInterested = true

// UserHobby joins one User and one Hobby. The pair (UserID, HobbyID) is its identity,
// so at most one link exists per pair and it cannot outlive either side.
type UserHobby struct {
	UserID     uuid.UUID
	HobbyID    uuid.UUID
	Interested bool
	Rating     *int      // No declared range.
	CreatedAt  time.Time // Defines the order links are listed in.
}
