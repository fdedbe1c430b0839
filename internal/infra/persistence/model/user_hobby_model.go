package model

import (
	"time"

	"github.com/google/uuid"
)

// UserHobbyModel mirrors the 'user_hobbies' join table. The composite primary key
// keeps one row per (user, hobby) pair and both foreign keys cascade on delete.
//
// Interested must not carry a gorm default tag: GORM omits zero-valued fields that
// have one, so false would be stored as the column default.
type UserHobbyModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey;index:user_hobbies_user_created_idx,priority:1"`
	HobbyID    uuid.UUID `gorm:"type:uuid;primaryKey;index:user_hobbies_hobby_id_idx"`
	Interested bool      `gorm:"not null"`
	Rating     *int
	CreatedAt  time.Time `gorm:"not null;index:user_hobbies_user_created_idx,priority:2"`

	User  *UserModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Hobby *HobbyModel `gorm:"foreignKey:HobbyID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserHobbyModel) TableName() string {
	return "user_hobbies"
}

// All returns every model in dependency order, for AutoMigrate in tests and tooling.
func All() []any {
	return []any{&UserModel{}, &HobbyModel{}, &UserHobbyModel{}}
}
