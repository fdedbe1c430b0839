package entity

import "github.com/google/uuid"

// Hobby is an activity users can link themselves to. Name is unique.
type Hobby struct {
	ID          uuid.UUID
	Name        string
	Description *string
}
