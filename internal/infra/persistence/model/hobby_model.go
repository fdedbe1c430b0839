package model

import (
	"github.com/google/uuid"
)

// HobbyModel mirrors the 'hobbies' table.
type HobbyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex:hobbies_name_key"`
	Description *string   `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (HobbyModel) TableName() string {
	return "hobbies"
}
