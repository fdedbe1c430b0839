package postgres

import (
	"context"
	"testing"
	"time"

	"hobbyexplorer/internal/domain/entity"
	domainerrors "hobbyexplorer/internal/domain/errors"
	"hobbyexplorer/internal/domain/repository"
	"hobbyexplorer/internal/errors"
	"hobbyexplorer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with foreign keys enforced.
// A single connection keeps every statement on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func createUser(t *testing.T, repo repository.UserRepository, username string, email *string) *entity.User {
	t.Helper()

	user := &entity.User{Username: username, Email: email, Name: "Name " + username, PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func createHobby(t *testing.T, repo repository.HobbyRepository, name string) *entity.Hobby {
	t.Helper()

	hobby := &entity.Hobby{Name: name}
	require.NoError(t, repo.Create(context.Background(), hobby))

	return hobby
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := createUser(t, repo, "kiko", strPtr("kiko@example.com"))
	assert.NotEqual(t, uuid.Nil, user.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, byID)

	byUsername, err := repo.FindByUsername(ctx, "kiko")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	byEmail, err := repo.FindByEmail(ctx, "kiko@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_UniqueConstraints(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	createUser(t, repo, "kiko", strPtr("kiko@example.com"))

	err := repo.Create(ctx, &entity.User{Username: "kiko", Name: "Other", PasswordHash: "hash"})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)

	err = repo.Create(ctx, &entity.User{Username: "other", Email: strPtr("kiko@example.com"), Name: "Other", PasswordHash: "hash"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)

	// Users without an email never collide with each other.
	createUser(t, repo, "no-email-1", nil)
	createUser(t, repo, "no-email-2", nil)

	var count int64
	require.NoError(t, db.Model(&model.UserModel{}).Where("username = ?", "kiko").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := createUser(t, repo, "kiko", strPtr("kiko@example.com"))
	other := createUser(t, repo, "other", strPtr("other@example.com"))

	user.Name = "Kiko"
	user.Email = nil
	require.NoError(t, repo.Update(ctx, user))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kiko", stored.Name)
	assert.Nil(t, stored.Email)

	other.Username = "kiko"
	assert.ErrorIs(t, repo.Update(ctx, other), domainerrors.ErrUsernameTaken)

	missing := &entity.User{ID: uuid.New(), Username: "ghost", Name: "Ghost", PasswordHash: "hash"}
	assert.ErrorIs(t, repo.Update(ctx, missing), repository.ErrUserNotFound)
}

func TestHobbyRepository_CreateFindAndDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewHobbyRepository(newTestDB(t))

	chess := createHobby(t, repo, "Chess")

	found, err := repo.FindByName(ctx, "Chess")
	require.NoError(t, err)
	assert.Equal(t, chess.ID, found.ID)
	assert.Nil(t, found.Description)

	err = repo.Create(ctx, &entity.Hobby{Name: "Chess"})
	assert.ErrorIs(t, err, domainerrors.ErrHobbyAlreadyExists)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrHobbyNotFound)
}

func TestHobbyRepository_CreateBatchAndFindByNames(t *testing.T) {
	ctx := context.Background()
	repo := NewHobbyRepository(newTestDB(t))

	err := repo.CreateBatch(ctx, []*entity.Hobby{
		{Name: "Chess", Description: strPtr("Board game")},
		{Name: "Climbing"},
		{Name: "Cooking"},
	})
	require.NoError(t, err)

	found, err := repo.FindByNames(ctx, []string{"Chess", "Cooking", "Diving"})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	empty, err := repo.FindByNames(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	err = repo.CreateBatch(ctx, []*entity.Hobby{{Name: "Diving"}, {Name: "Chess"}})
	assert.ErrorIs(t, err, domainerrors.ErrHobbyAlreadyExists)
}

func TestUserHobbyRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	hobbies := NewHobbyRepository(db)
	links := NewUserHobbyRepository(db)

	user := createUser(t, users, "kiko", nil)
	chess := createHobby(t, hobbies, "Chess")

	link := &entity.UserHobby{UserID: user.ID, HobbyID: chess.ID, Interested: true, Rating: intPtr(5)}
	require.NoError(t, links.Create(ctx, link))
	assert.False(t, link.CreatedAt.IsZero())

	err := links.Create(ctx, &entity.UserHobby{UserID: user.ID, HobbyID: chess.ID, Interested: true})
	assert.ErrorIs(t, err, domainerrors.ErrUserHobbyAlreadyExists)

	link.Interested = false
	link.Rating = nil
	require.NoError(t, links.Update(ctx, link))

	stored, err := links.Find(ctx, user.ID, chess.ID)
	require.NoError(t, err)
	assert.False(t, stored.Interested)
	assert.Nil(t, stored.Rating)

	require.NoError(t, links.Delete(ctx, user.ID, chess.ID))
	_, err = links.Find(ctx, user.ID, chess.ID)
	assert.ErrorIs(t, err, repository.ErrUserHobbyNotFound)
	assert.ErrorIs(t, links.Delete(ctx, user.ID, chess.ID), repository.ErrUserHobbyNotFound)
	assert.ErrorIs(t, links.Update(ctx, link), repository.ErrUserHobbyNotFound)
}

func TestUserHobbyRepository_MissingParent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	hobby := createHobby(t, NewHobbyRepository(db), "Chess")

	err := NewUserHobbyRepository(db).Create(ctx, &entity.UserHobby{UserID: uuid.New(), HobbyID: hobby.ID, Interested: true})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserHobbyRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	hobbies := NewHobbyRepository(db)
	links := NewUserHobbyRepository(db)

	user := createUser(t, users, "kiko", nil)
	names := []string{"Zither", "Archery", "Mahjong"}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range names {
		hobby := createHobby(t, hobbies, name)
		require.NoError(t, links.Create(ctx, &entity.UserHobby{
			UserID:     user.ID,
			HobbyID:    hobby.ID,
			Interested: true,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := links.ListHobbiesByUser(ctx, user.ID, repository.Page{Offset: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, name := range names {
		assert.Equal(t, name, all[i].Name)
	}

	window, err := links.ListHobbiesByUser(ctx, user.ID, repository.Page{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, "Archery", window[0].Name)
}

func TestUserHobbyRepository_ListKeepsInsertionOrderWithStoreTimestamps(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	hobbies := NewHobbyRepository(db)
	links := NewUserHobbyRepository(db)

	user := createUser(t, users, "kiko", nil)
	names := []string{"Yoga", "Chess", "Pottery", "Bouldering", "Knitting"}
	for _, name := range names {
		hobby := createHobby(t, hobbies, name)
		link := &entity.UserHobby{UserID: user.ID, HobbyID: hobby.ID, Interested: true}
		require.NoError(t, links.Create(ctx, link))
	}

	all, err := links.ListHobbiesByUser(ctx, user.ID, repository.Page{Offset: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, all, len(names))
	for i, name := range names {
		assert.Equal(t, name, all[i].Name)
	}
}

func TestHobbyRepository_ListNotLinkedToUser(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	hobbies := NewHobbyRepository(db)
	links := NewUserHobbyRepository(db)

	user := createUser(t, users, "kiko", nil)
	chess := createHobby(t, hobbies, "Chess")
	createHobby(t, hobbies, "Baking")
	createHobby(t, hobbies, "Archery")
	require.NoError(t, links.Create(ctx, &entity.UserHobby{UserID: user.ID, HobbyID: chess.ID, Interested: true}))

	suggestions, err := hobbies.ListNotLinkedToUser(ctx, user.ID, repository.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Archery", suggestions[0].Name)
	assert.Equal(t, "Baking", suggestions[1].Name)
}

func TestRepositories_DeleteCascadesLinks(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	hobbies := NewHobbyRepository(db)
	links := NewUserHobbyRepository(db)

	kiko := createUser(t, users, "kiko", nil)
	mika := createUser(t, users, "mika", nil)
	chess := createHobby(t, hobbies, "Chess")
	golf := createHobby(t, hobbies, "Golf")
	for _, pair := range [][2]uuid.UUID{{kiko.ID, chess.ID}, {kiko.ID, golf.ID}, {mika.ID, chess.ID}} {
		require.NoError(t, links.Create(ctx, &entity.UserHobby{UserID: pair[0], HobbyID: pair[1], Interested: true}))
	}

	require.NoError(t, users.Delete(ctx, kiko.ID))
	_, err := links.Find(ctx, kiko.ID, chess.ID)
	assert.ErrorIs(t, err, repository.ErrUserHobbyNotFound)
	_, err = links.Find(ctx, kiko.ID, golf.ID)
	assert.ErrorIs(t, err, repository.ErrUserHobbyNotFound)

	require.NoError(t, hobbies.Delete(ctx, chess.ID))
	_, err = links.Find(ctx, mika.ID, chess.ID)
	assert.ErrorIs(t, err, repository.ErrUserHobbyNotFound)

	assert.ErrorIs(t, users.Delete(ctx, kiko.ID), repository.ErrUserNotFound)
	assert.ErrorIs(t, hobbies.Delete(ctx, chess.ID), repository.ErrHobbyNotFound)
}

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	businessErr := errors.New("stop")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.UserRepo().Create(ctx, &entity.User{Username: "kept", Name: "Kept", PasswordHash: "hash"})
	})
	require.NoError(t, err)

	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.HobbyRepo().Create(ctx, &entity.Hobby{Name: "Discarded"}); err != nil {
			return err
		}

		return businessErr
	})
	assert.ErrorIs(t, err, businessErr)

	assert.Panics(t, func() {
		_ = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			_ = factory.HobbyRepo().Create(ctx, &entity.Hobby{Name: "Panicked"})
			panic("boom")
		})
	})

	_, err = NewUserRepository(db).FindByUsername(ctx, "kept")
	assert.NoError(t, err)
	_, err = NewHobbyRepository(db).FindByName(ctx, "Discarded")
	assert.ErrorIs(t, err, repository.ErrHobbyNotFound)
	_, err = NewHobbyRepository(db).FindByName(ctx, "Panicked")
	assert.ErrorIs(t, err, repository.ErrHobbyNotFound)
}
