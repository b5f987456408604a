package mongo

import (
	"context"

	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type taskRepository struct {
	coll *mongo.Collection
}

// NewTaskRepository returns a repository.TaskRepository over the tasks collection.
func NewTaskRepository(db *mongo.Database) repository.TaskRepository {
	return &taskRepository{coll: db.Collection(tasksCollection)}
}

func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	owner, err := primitive.ObjectIDFromHex(task.OwnerID)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "invalid task owner id")
	}

	status := task.Status
	if status == "" {
		status = entity.TaskStatusPending
	}

	ts := now()
	doc := &taskDocument{
		ID:          primitive.NewObjectID(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(status),
		Owner:       owner,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = doc.ID.Hex()
	task.Status = status
	task.CreatedAt = ts
	task.UpdatedAt = ts

	return nil
}

func (repo *taskRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]*entity.Task, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return []*entity.Task{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tasks")
	}

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode tasks")
	}

	tasks := make([]*entity.Task, 0, len(docs))
	for i := range docs {
		tasks = append(tasks, docs[i].toDomain())
	}

	return tasks, nil
}

func (repo *taskRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Task, error) {
	filter, ok := ownedTaskFilter(id, ownerID)
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	var doc taskDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translateTaskError(err, "failed to find task")
	}

	return doc.toDomain(), nil
}

func (repo *taskRepository) UpdateStatusByIDAndOwner(
	ctx context.Context, id, ownerID string, status entity.TaskStatus,
) (*entity.Task, error) {
	filter, ok := ownedTaskFilter(id, ownerID)
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	update := bson.M{"$set": bson.M{"status": string(status), "updatedAt": now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc taskDocument
	if err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, translateTaskError(err, "failed to update task status")
	}

	return doc.toDomain(), nil
}

func (repo *taskRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	filter, ok := ownedTaskFilter(id, ownerID)
	if !ok {
		return repository.ErrTaskNotFound
	}

	if err := repo.coll.FindOneAndDelete(ctx, filter).Err(); err != nil {
		return translateTaskError(err, "failed to delete task")
	}

	return nil
}

func ownedTaskFilter(id, ownerID string) (bson.M, bool) {
	taskID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, false
	}

	return bson.M{"_id": taskID, "owner": owner}, true
}

func translateTaskError(err error, details string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrTaskNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
