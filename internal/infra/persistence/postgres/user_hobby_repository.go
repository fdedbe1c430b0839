package postgres

import (
	"context"

	"hobbyexplorer/internal/domain/entity"
	domainerrors "hobbyexplorer/internal/domain/errors"
	"hobbyexplorer/internal/domain/repository"
	"hobbyexplorer/internal/errors"
	"hobbyexplorer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userHobbyRepository implements the repository.UserHobbyRepository interface.
type userHobbyRepository struct {
	db *gorm.DB
}

// NewUserHobbyRepository is the constructor for userHobbyRepository.
func NewUserHobbyRepository(db *gorm.DB) repository.UserHobbyRepository {
	return &userHobbyRepository{
		db: db,
	}
}

// Find retrieves the link between a user and a hobby.
func (repo *userHobbyRepository) Find(ctx context.Context, userID, hobbyID uuid.UUID) (*entity.UserHobby, error) {
	var linkM model.UserHobbyModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND hobby_id = ?", userID, hobbyID).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserHobbyNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user hobby")
	}

	return toUserHobbyDomain(&linkM), nil
}

// Create persists a new link. Associations are omitted so GORM never upserts the parents.
func (repo *userHobbyRepository) Create(ctx context.Context, link *entity.UserHobby) error {
	linkM := fromUserHobbyDomain(link)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserHobbyAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			// SQLite does not name the failed key; the user side is reported then.
			if violationMentions(err, "hobby_id") {
				return domainerrors.ErrHobbyNotFound
			}

			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user hobby")
	}

	link.CreatedAt = linkM.CreatedAt

	return nil
}

// Update overwrites interested and rating, including a cleared rating.
func (repo *userHobbyRepository) Update(ctx context.Context, link *entity.UserHobby) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserHobbyModel{}).
		Where("user_id = ? AND hobby_id = ?", link.UserID, link.HobbyID).
		Updates(map[string]any{
			"interested": link.Interested,
			"rating":     link.Rating,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) || isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user hobby values")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user hobby")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserHobbyNotFound
	}

	return nil
}

// Delete removes the link between a user and a hobby.
func (repo *userHobbyRepository) Delete(ctx context.Context, userID, hobbyID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND hobby_id = ?", userID, hobbyID).
		Delete(&model.UserHobbyModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user hobby")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserHobbyNotFound
	}

	return nil
}

// ListHobbiesByUser returns the user's hobbies in link insertion order.
func (repo *userHobbyRepository) ListHobbiesByUser(ctx context.Context, userID uuid.UUID, page repository.Page) ([]*entity.Hobby, error) {
	var hobbyModels []*model.HobbyModel

	if err := repo.db.WithContext(ctx).
		Model(&model.HobbyModel{}).
		Select("hobbies.*").
		Joins("JOIN user_hobbies ON user_hobbies.hobby_id = hobbies.id").
		Where("user_hobbies.user_id = ?", userID).
		Order("user_hobbies.created_at ASC").
		Order("user_hobbies.hobby_id ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&hobbyModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list user hobbies")
	}

	return toHobbyDomains(hobbyModels), nil
}

// --- Mapper Functions ---

func toUserHobbyDomain(data *model.UserHobbyModel) *entity.UserHobby {
	if data == nil {
		return nil
	}

	return &entity.UserHobby{
		UserID:     data.UserID,
		HobbyID:    data.HobbyID,
		Interested: data.Interested,
		Rating:     data.Rating,
		CreatedAt:  data.CreatedAt,
	}
}

func fromUserHobbyDomain(data *entity.UserHobby) *model.UserHobbyModel {
	if data == nil {
		return nil
	}

	return &model.UserHobbyModel{
		UserID:     data.UserID,
		HobbyID:    data.HobbyID,
		Interested: data.Interested,
		Rating:     data.Rating,
		CreatedAt:  data.CreatedAt,
	}
}
