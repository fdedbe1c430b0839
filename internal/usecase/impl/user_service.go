package impl

import (
	"context"
	"log/slog"

	deliverycontext "hobbyexplorer/internal/delivery/context"
	"hobbyexplorer/internal/domain/entity"
	domainerrors "hobbyexplorer/internal/domain/errors"
	"hobbyexplorer/internal/domain/repository"
	"hobbyexplorer/internal/domain/service"
	"hobbyexplorer/internal/errors"
	"hobbyexplorer/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser hashes the password and stores the user. Username and email are
// checked first for a readable conflict; the unique constraints decide races.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := ensureUsernameAvailable(ctx, userRepo, user.Username, uuid.Nil); err != nil {
			return err
		}
		if user.HasEmail() {
			if err := ensureEmailAvailable(ctx, userRepo, *user.Email, uuid.Nil); err != nil {
				return err
			}
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User created", slog.Any("userID", user.ID))

	return user, nil
}

// GetUser retrieves a user by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, toDomainError(err)
	}

	return user, nil
}

// GetUserByUsername retrieves a user by username.
func (srv *userService) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, toDomainError(err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email.
func (srv *userService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, toDomainError(err)
	}

	return user, nil
}

// UpdateUser applies a partial update. A conflicting username or email rejects
// the whole update.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	var passwordHash string
	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		passwordHash = hash
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			return toDomainError(err)
		}

		if input.Username != nil && *input.Username != user.Username {
			if err := ensureUsernameAvailable(ctx, userRepo, *input.Username, user.ID); err != nil {
				return err
			}
			user.Username = *input.Username
		}

		if input.Email.Set {
			if input.Email.Value != nil && !user.HasEmailEqualTo(*input.Email.Value) {
				if err := ensureEmailAvailable(ctx, userRepo, *input.Email.Value, user.ID); err != nil {
					return err
				}
			}
			input.Email.ApplyTo(&user.Email)
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if passwordHash != "" {
			user.PasswordHash = passwordHash
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return toDomainError(err)
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User updated", slog.Any("userID", id), slog.Bool("passwordChanged", passwordHash != ""))

	return updated, nil
}

// DeleteUser removes the user; its hobby links are removed with it.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return toDomainError(err)
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}

// ensureUsernameAvailable fails with ErrUsernameTaken when another user than self owns username.
func ensureUsernameAvailable(ctx context.Context, userRepo repository.UserRepository, username string, self uuid.UUID) error {
	existing, err := userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check username")
	}
	if existing.ID != self {
		return domainerrors.ErrUsernameTaken
	}

	return nil
}

// ensureEmailAvailable fails with ErrEmailTaken when another user than self owns email.
func ensureEmailAvailable(ctx context.Context, userRepo repository.UserRepository, email string, self uuid.UUID) error {
	existing, err := userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check email")
	}
	if existing.ID != self {
		return domainerrors.ErrEmailTaken
	}

	return nil
}
