package memory

import (
	"context"

	"tasker/internal/domain/entity"
	"tasker/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
}

// NewUserRepository returns a repository.UserRepository backed by store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	user, ok := repo.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	id, ok := repo.store.emails[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(repo.store.users[id]), nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, taken := repo.store.emails[user.Email]; taken {
		return repository.ErrDuplicateEmail
	}

	ts := repo.store.now()
	user.ID = uuid.NewString()
	user.CreatedAt = ts
	user.UpdatedAt = ts

	repo.store.users[user.ID] = cloneUser(user)
	repo.store.emails[user.Email] = user.ID

	return nil
}
