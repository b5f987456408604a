package mongo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"tasker/internal/domain/entity"
	"tasker/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestOwnedTaskFilter(t *testing.T) {
	taskID := primitive.NewObjectID()
	owner := primitive.NewObjectID()

	filter, ok := ownedTaskFilter(taskID.Hex(), owner.Hex())
	require.True(t, ok)
	assert.Equal(t, taskID, filter["_id"])
	assert.Equal(t, owner, filter["owner"])

	_, ok = ownedTaskFilter("123", owner.Hex())
	assert.False(t, ok)

	_, ok = ownedTaskFilter(taskID.Hex(), "")
	assert.False(t, ok)
}

func TestTaskDocument_ToDomain(t *testing.T) {
	doc := taskDocument{
		ID:          primitive.NewObjectID(),
		Title:       "write report",
		Description: "quarterly",
		Status:      "in-progress",
		Owner:       primitive.NewObjectID(),
		CreatedAt:   time.Unix(1700000000, 0).UTC(),
	}

	task := doc.toDomain()
	assert.Equal(t, doc.ID.Hex(), task.ID)
	assert.Equal(t, doc.Owner.Hex(), task.OwnerID)
	assert.Equal(t, entity.TaskStatusInProgress, task.Status)
	assert.Nil(t, task.Owner)
}

// newIntegrationDB connects to MONGO_TEST_URI and drops the scratch database afterwards.
func newIntegrationDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	db := client.Database(fmt.Sprintf("tasker_test_%d", time.Now().UnixNano()))
	require.NoError(t, EnsureIndexes(ctx, db))

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()
		_ = db.Drop(cleanupCtx)
		_ = client.Disconnect(cleanupCtx)
	})

	return db
}

func TestIntegration_UserRepository(t *testing.T) {
	db := newIntegrationDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)

	user := &entity.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, users.Create(ctx, user))
	require.NotEmpty(t, user.ID)

	found, err := users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	err = users.Create(ctx, &entity.User{Name: "Again", Email: "alice@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	_, err = users.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestIntegration_TaskRepository(t *testing.T) {
	db := newIntegrationDB(t)
	ctx := context.Background()
	tasks := NewTaskRepository(db)

	owner := primitive.NewObjectID().Hex()
	other := primitive.NewObjectID().Hex()

	task := &entity.Task{OwnerID: owner, Title: "t", Description: "d"}
	require.NoError(t, tasks.Create(ctx, task))
	assert.Equal(t, entity.TaskStatusPending, task.Status)

	_, err := tasks.FindByIDAndOwner(ctx, task.ID, other)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	updated, err := tasks.UpdateStatusByIDAndOwner(ctx, task.ID, owner, entity.TaskStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusCompleted, updated.Status)

	list, err := tasks.FindAllByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.ErrorIs(t, tasks.DeleteByIDAndOwner(ctx, task.ID, other), repository.ErrTaskNotFound)
	require.NoError(t, tasks.DeleteByIDAndOwner(ctx, task.ID, owner))
	assert.ErrorIs(t, tasks.DeleteByIDAndOwner(ctx, task.ID, owner), repository.ErrTaskNotFound)
}
