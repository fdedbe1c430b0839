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
)

// importBatchSize bounds the rows per INSERT statement during bulk creation.
const importBatchSize = 500

// hobbyRepository implements the repository.HobbyRepository interface.
type hobbyRepository struct {
	db *gorm.DB
}

// NewHobbyRepository is the constructor for hobbyRepository.
func NewHobbyRepository(db *gorm.DB) repository.HobbyRepository {
	return &hobbyRepository{
		db: db,
	}
}

// FindByID retrieves a hobby by its unique ID.
func (repo *hobbyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hobby, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByName retrieves a hobby by its unique name.
func (repo *hobbyRepository) FindByName(ctx context.Context, name string) (*entity.Hobby, error) {
	return repo.findOne(ctx, "name = ?", name)
}

func (repo *hobbyRepository) findOne(ctx context.Context, query string, arg any) (*entity.Hobby, error) {
	var hobbyM model.HobbyModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&hobbyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHobbyNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find hobby")
	}

	return toHobbyDomain(&hobbyM), nil
}

// FindByNames retrieves all hobbies whose name is in names.
func (repo *hobbyRepository) FindByNames(ctx context.Context, names []string) ([]*entity.Hobby, error) {
	if len(names) == 0 {
		return []*entity.Hobby{}, nil
	}

	var hobbyModels []*model.HobbyModel
	if err := repo.db.WithContext(ctx).
		Where("name IN ?", names).
		Find(&hobbyModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find hobbies by name")
	}

	return toHobbyDomains(hobbyModels), nil
}

// Create persists a new hobby.
func (repo *hobbyRepository) Create(ctx context.Context, hobby *entity.Hobby) error {
	if hobby.ID == uuid.Nil {
		hobby.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(fromHobbyDomain(hobby)).Error; err != nil {
		return translateHobbyWriteError(err, "failed to create hobby")
	}

	return nil
}

// CreateBatch persists hobbies in batches of importBatchSize.
func (repo *hobbyRepository) CreateBatch(ctx context.Context, hobbies []*entity.Hobby) error {
	if len(hobbies) == 0 {
		return nil
	}

	hobbyModels := make([]*model.HobbyModel, 0, len(hobbies))
	for _, hobby := range hobbies {
		if hobby.ID == uuid.Nil {
			hobby.ID = uuid.New()
		}
		hobbyModels = append(hobbyModels, fromHobbyDomain(hobby))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(hobbyModels, importBatchSize).Error; err != nil {
		return translateHobbyWriteError(err, "failed to create hobbies")
	}

	return nil
}

// Delete removes a hobby. The cascading foreign key drops links referencing it.
func (repo *hobbyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.HobbyModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete hobby")
	}

	if result.RowsAffected == 0 {
		return repository.ErrHobbyNotFound
	}

	return nil
}

// ListNotLinkedToUser returns hobbies without a link to userID, ordered by name.
func (repo *hobbyRepository) ListNotLinkedToUser(ctx context.Context, userID uuid.UUID, page repository.Page) ([]*entity.Hobby, error) {
	linked := repo.db.
		Model(&model.UserHobbyModel{}).
		Select("hobby_id").
		Where("user_id = ?", userID)

	var hobbyModels []*model.HobbyModel
	if err := repo.db.WithContext(ctx).
		Where("id NOT IN (?)", linked).
		Order("name ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&hobbyModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list hobby suggestions")
	}

	return toHobbyDomains(hobbyModels), nil
}

func translateHobbyWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrHobbyAlreadyExists
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("missing required hobby information")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

func toHobbyDomain(data *model.HobbyModel) *entity.Hobby {
	if data == nil {
		return nil
	}

	return &entity.Hobby{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}

func toHobbyDomains(data []*model.HobbyModel) []*entity.Hobby {
	hobbies := make([]*entity.Hobby, 0, len(data))
	for _, hobbyM := range data {
		hobbies = append(hobbies, toHobbyDomain(hobbyM))
	}

	return hobbies
}

func fromHobbyDomain(data *entity.Hobby) *model.HobbyModel {
	if data == nil {
		return nil
	}

	return &model.HobbyModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}
