// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"tasker/internal/domain/entity"
	"tasker/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository is the credential store.
type UserRepository interface {
	// FindByID retrieves a single user by their identifier.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address, matched exactly.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills its ID and timestamps.
	// It returns ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, user *entity.User) error
}
