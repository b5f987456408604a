// Package persistence selects the storage backend configured by storage.driver.
package persistence

import (
	"log/slog"

	"tasker/config"
	"tasker/internal/domain/repository"
	"tasker/internal/infra/persistence/memory"
	"tasker/internal/infra/persistence/mongo"
	"tasker/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories exposed to the usecases.
type Repositories struct {
	fx.Out

	Users repository.UserRepository
	Tasks repository.TaskRepository
}

// NewRepositories builds the repositories for the configured storage driver.
func NewRepositories(params Params) (Repositories, error) {
	driver := params.Config.Storage.Driver
	logger := params.Logger.With(slog.String("storage_driver", driver))

	switch driver {
	case config.StorageDriverMongo:
		db, err := mongo.New(mongo.Params{Lifecycle: params.Lc, Config: params.Config, Logger: logger})
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("Using MongoDB storage")

		return Repositories{
			Users: mongo.NewUserRepository(db),
			Tasks: mongo.NewTaskRepository(db),
		}, nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lc, Config: params.Config, Logger: logger})
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("Using PostgreSQL storage")

		return Repositories{
			Users: postgres.NewUserRepository(db),
			Tasks: postgres.NewTaskRepository(db),
		}, nil

	case config.StorageDriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			Users: memory.NewUserRepository(store),
			Tasks: memory.NewTaskRepository(store),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
