package impl

import (
	"context"
	"fmt"
	"testing"

	"hobbyexplorer/internal/domain/entity"
	domainerrors "hobbyexplorer/internal/domain/errors"
	"hobbyexplorer/internal/domain/repository"
	"hobbyexplorer/internal/errors"
	mockRepo "hobbyexplorer/internal/mocks/repository"
	"hobbyexplorer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type hobbyServiceFixtures struct {
	service   usecase.HobbyUsecase
	txManager *mockRepo.MockTransactionManager
	hobbyRepo *mockRepo.MockHobbyRepository
}

func createTestHobbyService(t *testing.T) hobbyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hobbyRepo := mockRepo.NewMockHobbyRepository(t)

	return hobbyServiceFixtures{
		service: NewHobbyService(HobbyServiceParams{
			TxManager: txManager,
			HobbyRepo: hobbyRepo,
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		hobbyRepo: hobbyRepo,
	}
}

func TestHobbyService_CreateHobby_Success(t *testing.T) {
	fx := createTestHobbyService(t)
	ctx := context.Background()

	tx := expectTransaction(t, fx.txManager)
	tx.hobbyRepo.EXPECT().FindByName(ctx, "Chess").Return(nil, repository.ErrHobbyNotFound)
	tx.hobbyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Hobby")).Return(nil)

	hobby, err := fx.service.CreateHobby(ctx, &usecase.CreateHobbyInput{Name: "Chess"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, hobby.ID)
	assert.Equal(t, "Chess", hobby.Name)
	assert.Nil(t, hobby.Description)
}

func TestHobbyService_CreateHobby_NameTaken(t *testing.T) {
	fx := createTestHobbyService(t)
	ctx := context.Background()

	tx := expectTransaction(t, fx.txManager)
	tx.hobbyRepo.EXPECT().FindByName(ctx, "Chess").Return(&entity.Hobby{ID: uuid.New(), Name: "Chess"}, nil)

	hobby, err := fx.service.CreateHobby(ctx, &usecase.CreateHobbyInput{Name: "Chess"})

	assert.Nil(t, hobby)
	assert.ErrorIs(t, err, domainerrors.ErrHobbyAlreadyExists)
}

func TestHobbyService_CreateHobby_LookupFailure(t *testing.T) {
	fx := createTestHobbyService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	tx := expectTransaction(t, fx.txManager)
	tx.hobbyRepo.EXPECT().FindByName(ctx, "Chess").Return(nil, dbErr)

	_, err := fx.service.CreateHobby(ctx, &usecase.CreateHobbyInput{Name: "Chess"})

	assert.ErrorIs(t, err, dbErr)
}

func TestHobbyService_GetAndDelete(t *testing.T) {
	fx := createTestHobbyService(t)
	ctx := context.Background()
	chess := &entity.Hobby{ID: uuid.New(), Name: "Chess"}
	missing := uuid.New()

	fx.hobbyRepo.EXPECT().FindByID(ctx, chess.ID).Return(chess, nil)
	fx.hobbyRepo.EXPECT().FindByName(ctx, "Golf").Return(nil, repository.ErrHobbyNotFound)
	fx.hobbyRepo.EXPECT().Delete(ctx, missing).Return(repository.ErrHobbyNotFound)
	fx.hobbyRepo.EXPECT().Delete(ctx, chess.ID).Return(nil)

	found, err := fx.service.GetHobby(ctx, chess.ID)
	require.NoError(t, err)
	assert.Equal(t, chess, found)

	_, err = fx.service.GetHobbyByName(ctx, "Golf")
	assert.ErrorIs(t, err, domainerrors.ErrHobbyNotFound)

	assert.ErrorIs(t, fx.service.DeleteHobby(ctx, missing), domainerrors.ErrHobbyNotFound)
	assert.NoError(t, fx.service.DeleteHobby(ctx, chess.ID))
}

func TestHobbyService_ImportHobbies_SkipsExistingAndRepeatedNames(t *testing.T) {
	fx := createTestHobbyService(t)
	ctx := context.Background()
	inputs := []usecase.CreateHobbyInput{
		{Name: "Chess", Description: strPtr("Board game")},
		{Name: "Golf"},
		{Name: "Chess", Description: strPtr("Repeated row")},
		{Name: "Knitting"},
	}

	tx := expectTransaction(t, fx.txManager)
	tx.hobbyRepo.EXPECT().
		FindByNames(ctx, []string{"Chess", "Golf", "Knitting"}).
		Return([]*entity.Hobby{{ID: uuid.New(), Name: "Golf"}}, nil)
	tx.hobbyRepo.EXPECT().
		CreateBatch(ctx, mock.MatchedBy(func(hobbies []*entity.Hobby) bool {
			return len(hobbies) == 2 &&
				hobbies[0].Name == "Chess" && *hobbies[0].Description == "Board game" &&
				hobbies[1].Name == "Knitting"
		})).
		Return(nil)

	result, err := fx.service.ImportHobbies(ctx, inputs)

	require.NoError(t, err)
	assert.Equal(t, &usecase.ImportResult{Created: 2, Skipped: 2}, result)
}

func TestHobbyService_ImportHobbies_LooksUpNamesInChunks(t *testing.T) {
	fx := createTestHobbyService(t)
	ctx := context.Background()

	inputs := make([]usecase.CreateHobbyInput, importLookupChunk+1)
	for i := range inputs {
		inputs[i] = usecase.CreateHobbyInput{Name: fmt.Sprintf("Hobby %04d", i)}
	}

	tx := expectTransaction(t, fx.txManager)
	tx.hobbyRepo.EXPECT().
		FindByNames(ctx, mock.MatchedBy(func(names []string) bool { return len(names) == importLookupChunk })).
		Return(nil, nil).
		Once()
	tx.hobbyRepo.EXPECT().
		FindByNames(ctx, mock.MatchedBy(func(names []string) bool { return len(names) == 1 })).
		Return(nil, nil).
		Once()
	tx.hobbyRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(nil)

	result, err := fx.service.ImportHobbies(ctx, inputs)

	require.NoError(t, err)
	assert.Equal(t, importLookupChunk+1, result.Created)
	assert.Zero(t, result.Skipped)
}

func TestHobbyService_ImportHobbies_FailureReturnsError(t *testing.T) {
	fx := createTestHobbyService(t)
	ctx := context.Background()

	tx := expectTransaction(t, fx.txManager)
	tx.hobbyRepo.EXPECT().FindByNames(ctx, []string{"Chess"}).Return(nil, nil)
	tx.hobbyRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(domainerrors.ErrHobbyAlreadyExists)

	result, err := fx.service.ImportHobbies(ctx, []usecase.CreateHobbyInput{{Name: "Chess"}})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrHobbyAlreadyExists)
}
