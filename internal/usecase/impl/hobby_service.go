package impl

import (
	"context"
	"log/slog"

	deliverycontext "hobbyexplorer/internal/delivery/context"
	"hobbyexplorer/internal/domain/entity"
	domainerrors "hobbyexplorer/internal/domain/errors"
	"hobbyexplorer/internal/domain/repository"
	"hobbyexplorer/internal/errors"
	"hobbyexplorer/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// importLookupChunk bounds the IN list used to find names that already exist.
const importLookupChunk = 500

// hobbyService implements the HobbyUsecase interface.
type hobbyService struct {
	txManager repository.TransactionManager
	hobbyRepo repository.HobbyRepository
	logger    *slog.Logger
}

// HobbyServiceParams holds dependencies for HobbyService, injected by Fx.
type HobbyServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	HobbyRepo repository.HobbyRepository
	Logger    *slog.Logger
}

// NewHobbyService is the constructor for hobbyService.
func NewHobbyService(params HobbyServiceParams) usecase.HobbyUsecase {
	return &hobbyService{
		txManager: params.TxManager,
		hobbyRepo: params.HobbyRepo,
		logger:    params.Logger,
	}
}

func (srv *hobbyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateHobby stores a hobby with a unique name.
func (srv *hobbyService) CreateHobby(ctx context.Context, input *usecase.CreateHobbyInput) (*entity.Hobby, error) {
	hobby := &entity.Hobby{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		hobbyRepo := repoFactory.HobbyRepo()

		_, err := hobbyRepo.FindByName(ctx, hobby.Name)
		if err == nil {
			return domainerrors.ErrHobbyAlreadyExists
		}
		if !errors.Is(err, repository.ErrHobbyNotFound) {
			return errors.Wrap(err, "failed to check hobby name")
		}

		return hobbyRepo.Create(ctx, hobby)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Hobby created", slog.Any("hobbyID", hobby.ID), slog.String("name", hobby.Name))

	return hobby, nil
}

// GetHobby retrieves a hobby by ID.
func (srv *hobbyService) GetHobby(ctx context.Context, id uuid.UUID) (*entity.Hobby, error) {
	hobby, err := srv.hobbyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, toDomainError(err)
	}

	return hobby, nil
}

// GetHobbyByName retrieves a hobby by its name.
func (srv *hobbyService) GetHobbyByName(ctx context.Context, name string) (*entity.Hobby, error) {
	hobby, err := srv.hobbyRepo.FindByName(ctx, name)
	if err != nil {
		return nil, toDomainError(err)
	}

	return hobby, nil
}

// DeleteHobby removes the hobby and every link to it.
func (srv *hobbyService) DeleteHobby(ctx context.Context, id uuid.UUID) error {
	if err := srv.hobbyRepo.Delete(ctx, id); err != nil {
		return toDomainError(err)
	}

	srv.log(ctx).Info("Hobby deleted", slog.Any("hobbyID", id))

	return nil
}

// ImportHobbies creates all new hobbies in one transaction, so a failed import leaves nothing behind.
func (srv *hobbyService) ImportHobbies(ctx context.Context, inputs []usecase.CreateHobbyInput) (*usecase.ImportResult, error) {
	candidates, duplicates := dedupeByName(inputs)
	result := &usecase.ImportResult{Skipped: duplicates}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		hobbyRepo := repoFactory.HobbyRepo()

		existing, err := findExistingNames(ctx, hobbyRepo, candidates)
		if err != nil {
			return err
		}

		fresh := make([]*entity.Hobby, 0, len(candidates))
		for _, candidate := range candidates {
			if _, ok := existing[candidate.Name]; ok {
				result.Skipped++

				continue
			}
			fresh = append(fresh, &entity.Hobby{
				ID:          uuid.New(),
				Name:        candidate.Name,
				Description: candidate.Description,
			})
		}

		if err := hobbyRepo.CreateBatch(ctx, fresh); err != nil {
			return err
		}
		result.Created = len(fresh)

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Hobby import failed", slog.Int("rows", len(inputs)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to import hobbies")
	}

	srv.log(ctx).Info("Hobby import finished",
		slog.Int("rows", len(inputs)),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}

// dedupeByName keeps the first occurrence of each name and counts the rest.
func dedupeByName(inputs []usecase.CreateHobbyInput) ([]usecase.CreateHobbyInput, int) {
	seen := make(map[string]struct{}, len(inputs))
	unique := make([]usecase.CreateHobbyInput, 0, len(inputs))

	for _, input := range inputs {
		if _, ok := seen[input.Name]; ok {
			continue
		}
		seen[input.Name] = struct{}{}
		unique = append(unique, input)
	}

	return unique, len(inputs) - len(unique)
}

func findExistingNames(ctx context.Context, hobbyRepo repository.HobbyRepository, candidates []usecase.CreateHobbyInput) (map[string]struct{}, error) {
	existing := make(map[string]struct{})

	for start := 0; start < len(candidates); start += importLookupChunk {
		end := min(start+importLookupChunk, len(candidates))

		names := make([]string, 0, end-start)
		for _, candidate := range candidates[start:end] {
			names = append(names, candidate.Name)
		}

		found, err := hobbyRepo.FindByNames(ctx, names)
		if err != nil {
			return nil, errors.Wrap(err, "failed to look up existing hobbies")
		}
		for _, hobby := range found {
			existing[hobby.Name] = struct{}{}
		}
	}

	return existing, nil
}
