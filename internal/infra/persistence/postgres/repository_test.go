package postgres

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"tasker/config"
	"tasker/internal/domain/entity"
	"tasker/internal/domain/repository"
	"tasker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := Open(sqlite.Open(filepath.Join(t.TempDir(), "tasker.db")), logger, &config.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.TaskModel{}))

	return db
}

func createTestUser(t *testing.T, repo repository.UserRepository, email string) *entity.User {
	t.Helper()

	user := &entity.User{Name: "Test User", Email: email, PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := createTestUser(t, repo, "alice@example.com")
	_, err := uuid.Parse(user.ID)
	require.NoError(t, err)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	createTestUser(t, repo, "dup@example.com")

	err := repo.Create(context.Background(), &entity.User{Name: "Other", Email: "dup@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTaskRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)

	owner := createTestUser(t, users, "owner@example.com")

	first := &entity.Task{OwnerID: owner.ID, Title: "first", Description: "d1"}
	require.NoError(t, tasks.Create(ctx, first))
	assert.Equal(t, entity.TaskStatusPending, first.Status)
	time.Sleep(2 * time.Millisecond)
	second := &entity.Task{OwnerID: owner.ID, Title: "second", Description: "d2"}
	require.NoError(t, tasks.Create(ctx, second))

	list, err := tasks.FindAllByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	updated, err := tasks.UpdateStatusByIDAndOwner(ctx, first.ID, owner.ID, entity.TaskStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, entity.TaskStatusCompleted, updated.Status)
	assert.Equal(t, "first", updated.Title)

	got, err := tasks.FindByIDAndOwner(ctx, first.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusCompleted, got.Status)

	require.NoError(t, tasks.DeleteByIDAndOwner(ctx, first.ID, owner.ID))
	_, err = tasks.FindByIDAndOwner(ctx, first.ID, owner.ID)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.ErrorIs(t, tasks.DeleteByIDAndOwner(ctx, first.ID, owner.ID), repository.ErrTaskNotFound)
}

func TestTaskRepository_OwnerScoping(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)

	alice := createTestUser(t, users, "alice@example.com")
	bob := createTestUser(t, users, "bob@example.com")

	task := &entity.Task{OwnerID: alice.ID, Title: "private", Description: "alice only"}
	require.NoError(t, tasks.Create(ctx, task))

	_, err := tasks.FindByIDAndOwner(ctx, task.ID, bob.ID)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	_, err = tasks.UpdateStatusByIDAndOwner(ctx, task.ID, bob.ID, entity.TaskStatusCompleted)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	assert.ErrorIs(t, tasks.DeleteByIDAndOwner(ctx, task.ID, bob.ID), repository.ErrTaskNotFound)

	bobTasks, err := tasks.FindAllByOwner(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobTasks)

	stored, err := tasks.FindByIDAndOwner(ctx, task.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusPending, stored.Status)
}

func TestTaskRepository_MalformedIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	tasks := NewTaskRepository(newTestDB(t))
	owner := uuid.NewString()

	_, err := tasks.FindByIDAndOwner(ctx, "123", owner)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	_, err = tasks.UpdateStatusByIDAndOwner(ctx, "123", owner, entity.TaskStatusCompleted)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	assert.ErrorIs(t, tasks.DeleteByIDAndOwner(ctx, "123", owner), repository.ErrTaskNotFound)
}
