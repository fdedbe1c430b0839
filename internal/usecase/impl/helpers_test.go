package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hobbyexplorer/config"
	"hobbyexplorer/internal/domain/repository"
	mockRepo "hobbyexplorer/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(defaultLimit, maxLimit int) *config.Config {
	return &config.Config{
		Pagination: &config.PaginationConfig{
			DefaultLimit: defaultLimit,
			MaxLimit:     maxLimit,
		},
	}
}

// txFactory is the set of transaction-bound repositories handed to the callback.
type txFactory struct {
	factory       *mockRepo.MockRepositoryFactory
	userRepo      *mockRepo.MockUserRepository
	hobbyRepo     *mockRepo.MockHobbyRepository
	userHobbyRepo *mockRepo.MockUserHobbyRepository
}

// expectTransaction makes txManager run the callback against fresh repository
// mocks and return whatever the callback returns.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager) *txFactory {
	t.Helper()

	tx := &txFactory{
		factory:       mockRepo.NewMockRepositoryFactory(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		hobbyRepo:     mockRepo.NewMockHobbyRepository(t),
		userHobbyRepo: mockRepo.NewMockUserHobbyRepository(t),
	}
	tx.factory.EXPECT().UserRepo().Return(tx.userRepo).Maybe()
	tx.factory.EXPECT().HobbyRepo().Return(tx.hobbyRepo).Maybe()
	tx.factory.EXPECT().UserHobbyRepo().Return(tx.userHobbyRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(tx.factory)
		}).
		Once()

	return tx
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }
