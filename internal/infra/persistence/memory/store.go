// Package memory keeps users and tasks in process memory. It backs the
// "memory" storage driver used for local runs and tests.
package memory

import (
	"sync"
	"time"

	"tasker/internal/domain/entity"
)

// Store holds every record behind one lock so each repository call is atomic.
type Store struct {
	mu     sync.RWMutex
	users  map[string]*entity.User
	emails map[string]string
	tasks  map[string]*entity.Task
	now    func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:  make(map[string]*entity.User),
		emails: make(map[string]string),
		tasks:  make(map[string]*entity.Task),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func cloneUser(u *entity.User) *entity.User {
	c := *u

	return &c
}

func cloneTask(t *entity.Task) *entity.Task {
	c := *t
	c.Owner = nil

	return &c
}
