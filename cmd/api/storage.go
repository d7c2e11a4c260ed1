// AngelaMos | 2026
// storage.go

package main

import (
	"context"
	"log/slog"

	"github.com/carterperez-dev/cardops/internal/auth"
	"github.com/carterperez-dev/cardops/internal/card"
	"github.com/carterperez-dev/cardops/internal/client"
	"github.com/carterperez-dev/cardops/internal/config"
	"github.com/carterperez-dev/cardops/internal/core"
	"github.com/carterperez-dev/cardops/internal/incident"
	"github.com/carterperez-dev/cardops/internal/inventory"
	"github.com/carterperez-dev/cardops/internal/user"
)

type repositories struct {
	users     user.Repository
	sessions  auth.Repository
	clients   client.Repository
	cards     card.Repository
	incidents incident.Repository
	inventory inventory.Repository
}

func memoryRepositories() repositories {
	return repositories{
		users:     user.NewMemoryRepository(),
		sessions:  auth.NewMemoryRepository(),
		clients:   client.NewMemoryRepository(),
		cards:     card.NewMemoryRepository(),
		incidents: incident.NewMemoryRepository(),
		inventory: inventory.NewMemoryRepository(),
	}
}

func postgresRepositories(db core.DBTX) repositories {
	return repositories{
		users:     user.NewRepository(db),
		sessions:  auth.NewRepository(db),
		clients:   client.NewRepository(db),
		cards:     card.NewRepository(db),
		incidents: incident.NewRepository(db),
		inventory: inventory.NewRepository(db),
	}
}

// storage owns the database handle when one was opened; db is nil for the
// memory backend.
type storage struct {
	repos repositories
	db    *core.Database
}

func openStorage(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (*storage, error) {
	if !cfg.UsesPostgres() {
		logger.Warn("using in-memory storage, data is lost on restart")
		return &storage{repos: memoryRepositories()}, nil
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if cfg.Database.AutoMigrate {
		if err := core.Migrate(ctx, db.DB); err != nil {
			_ = db.Close() //nolint:errcheck // already failing
			return nil, err
		}
		logger.Info("database migrations applied")
	}

	return &storage{repos: postgresRepositories(db.DB), db: db}, nil
}

func (s *storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

type services struct {
	users     *user.Service
	auth      *auth.Service
	clients   *client.Service
	cards     *card.Service
	incidents *incident.Service
	inventory *inventory.Service
}

func newServices(repos repositories, cfg config.AuthConfig) *services {
	users := user.NewService(repos.users)

	return &services{
		users:     users,
		auth:      auth.NewService(repos.sessions, users, cfg.SessionTTL),
		clients:   client.NewService(repos.clients),
		cards:     card.NewService(repos.cards),
		incidents: incident.NewService(repos.incidents),
		inventory: inventory.NewService(repos.inventory),
	}
}
