package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/project-admin/config"
	"github.com/GoSim-25-26J-441/project-admin/internal/projects/render"
	"github.com/GoSim-25-26J-441/project-admin/internal/projects/repository"
	"github.com/GoSim-25-26J-441/project-admin/internal/projects/service"
)

// BuildProjectService wires the Postgres repository, the optional Redis
// cache and the markup renderer into a ProjectService.
func BuildProjectService(db *sql.DB, rdb *redis.Client, cfg *config.Config) (*service.ProjectService, error) {
	var store service.Store = repository.NewProjectRepository(db)
	if rdb != nil {
		store = repository.NewCachedStore(repository.NewProjectRepository(db), rdb, cfg.Redis.TTL)
	} else {
		slog.Info("REDIS_ADDR not set, project cache disabled")
	}

	renderer, err := render.New(cfg.Render.CacheSize)
	if err != nil {
		return nil, err
	}
	return service.NewProjectService(store, renderer), nil
}
