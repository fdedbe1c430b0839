package impl

import (
	"context"
	"log/slog"

	"hobbyexplorer/config"
	deliverycontext "hobbyexplorer/internal/delivery/context"
	"hobbyexplorer/internal/domain/entity"
	domainerrors "hobbyexplorer/internal/domain/errors"
	"hobbyexplorer/internal/domain/repository"
	"hobbyexplorer/internal/errors"
	"hobbyexplorer/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userHobbyService implements the UserHobbyUsecase interface.
type userHobbyService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	hobbyRepo     repository.HobbyRepository
	userHobbyRepo repository.UserHobbyRepository
	pages         pageLimits
	logger        *slog.Logger
}

// UserHobbyServiceParams holds dependencies for UserHobbyService, injected by Fx.
type UserHobbyServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	HobbyRepo     repository.HobbyRepository
	UserHobbyRepo repository.UserHobbyRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewUserHobbyService is the constructor for userHobbyService.
func NewUserHobbyService(params UserHobbyServiceParams) usecase.UserHobbyUsecase {
	return &userHobbyService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		hobbyRepo:     params.HobbyRepo,
		userHobbyRepo: params.UserHobbyRepo,
		pages:         newPageLimits(params.Config),
		logger:        params.Logger,
	}
}

func (srv *userHobbyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddHobby links an existing hobby to an existing user.
func (srv *userHobbyService) AddHobby(ctx context.Context, userID uuid.UUID, input *usecase.CreateUserHobbyInput) (*entity.UserHobby, error) {
	link := &entity.UserHobby{
		UserID:     userID,
		HobbyID:    input.HobbyID,
		Interested: entity.DefaultInterested,
		Rating:     input.Rating,
	}
	if input.Interested != nil {
		link.Interested = *input.Interested
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			return toDomainError(err)
		}
		if _, err := repoFactory.HobbyRepo().FindByID(ctx, input.HobbyID); err != nil {
			return toDomainError(err)
		}

		userHobbyRepo := repoFactory.UserHobbyRepo()
		_, err := userHobbyRepo.Find(ctx, userID, input.HobbyID)
		if err == nil {
			return domainerrors.ErrUserHobbyAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserHobbyNotFound) {
			return errors.Wrap(err, "failed to check existing link")
		}

		return userHobbyRepo.Create(ctx, link)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Hobby linked to user", slog.Any("userID", userID), slog.Any("hobbyID", input.HobbyID))

	return link, nil
}

// GetUserHobby retrieves a single link.
func (srv *userHobbyService) GetUserHobby(ctx context.Context, userID, hobbyID uuid.UUID) (*entity.UserHobby, error) {
	link, err := srv.userHobbyRepo.Find(ctx, userID, hobbyID)
	if err != nil {
		return nil, toDomainError(err)
	}

	return link, nil
}

// ListUserHobbies lists the user's hobbies in link order.
func (srv *userHobbyService) ListUserHobbies(ctx context.Context, userID uuid.UUID, page usecase.PageInput) ([]*entity.Hobby, error) {
	window, err := srv.pages.resolve(page)
	if err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, toDomainError(err)
	}

	hobbies, err := srv.userHobbyRepo.ListHobbiesByUser(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	return hobbies, nil
}

// SuggestHobbies lists hobbies the user has not linked yet.
func (srv *userHobbyService) SuggestHobbies(ctx context.Context, userID uuid.UUID, page usecase.PageInput) ([]*entity.Hobby, error) {
	window, err := srv.pages.resolve(page)
	if err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, toDomainError(err)
	}

	hobbies, err := srv.hobbyRepo.ListNotLinkedToUser(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	return hobbies, nil
}

// UpdateUserHobby applies a partial update to interested and rating.
func (srv *userHobbyService) UpdateUserHobby(ctx context.Context, userID, hobbyID uuid.UUID, input *usecase.UpdateUserHobbyInput) (*entity.UserHobby, error) {
	var updated *entity.UserHobby
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userHobbyRepo := repoFactory.UserHobbyRepo()

		link, err := userHobbyRepo.Find(ctx, userID, hobbyID)
		if err != nil {
			return toDomainError(err)
		}

		if input.Interested != nil {
			link.Interested = *input.Interested
		}
		input.Rating.ApplyTo(&link.Rating)

		if err := userHobbyRepo.Update(ctx, link); err != nil {
			return toDomainError(err)
		}
		updated = link

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// RemoveHobby deletes the link between the user and the hobby.
func (srv *userHobbyService) RemoveHobby(ctx context.Context, userID, hobbyID uuid.UUID) error {
	if err := srv.userHobbyRepo.Delete(ctx, userID, hobbyID); err != nil {
		return toDomainError(err)
	}

	srv.log(ctx).Info("Hobby unlinked from user", slog.Any("userID", userID), slog.Any("hobbyID", hobbyID))

	return nil
}
